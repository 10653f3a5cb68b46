package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sheetpack/sheetpack/internal/core/services"
	"github.com/sheetpack/sheetpack/pkg/ui"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input_sheets_dir] [output_assets_dir]",
	Short: "Convert Aseprite sheet exports into intermediate assets",
	Long: `Run stage one of the pipeline.

Every .json sheet description directly inside the input directory is parsed,
derived into a sprite-sheet asset, an animation definition and grouped
animations, and written under namespaced folders of the output directory.
Invalid sheets are reported and skipped.

Examples:
  sheetpack convert                      # ./ -> ./assets
  sheetpack convert ./art ./build/assets`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	inputDir := appConfig.SheetsDir
	outputDir := appConfig.AssetsDir
	if len(args) > 0 {
		inputDir = args[0]
	}
	if len(args) > 1 {
		outputDir = args[1]
	}

	fmt.Println(ui.FormatPack("Converting sheets from " + ui.StyleBold.Render(inputDir)))

	resp, err := convertService.Execute(ctx, services.ConvertRequest{
		InputDir:  inputDir,
		OutputDir: outputDir,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Conversion failed"))
		return err
	}

	fmt.Println(ui.RenderKeyValue("Sheets converted", strconv.Itoa(resp.SheetsConverted)))
	fmt.Println(ui.RenderKeyValue("Animations written", strconv.Itoa(resp.AnimationsWritten)))
	if resp.SheetsSkipped > 0 {
		fmt.Println(ui.FormatWarning(strconv.Itoa(resp.SheetsSkipped) + " sheet(s) skipped, see log"))
	} else {
		fmt.Println(ui.FormatSuccess("Done"))
	}

	return nil
}
