package main

import "github.com/sheetpack/sheetpack/cmd"

func main() {
	cmd.Execute()
}
