package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sheetpack/sheetpack/internal/core/services"
	"github.com/sheetpack/sheetpack/pkg/ui"
)

var packCmd = &cobra.Command{
	Use:   "pack [input_assets_dir] [output_resources_dir]",
	Short: "Pack intermediate assets into binary resources",
	Long: `Run stage two of the pipeline.

Every asset inside the known namespace folders of the input directory is
serialized into the engine's fixed binary layout and written to a file named
by its numeric identifier. Corrupt assets are reported and skipped; the
remaining files still pack.

Examples:
  sheetpack pack                          # ./assets -> ./resources
  sheetpack pack ./build/assets ./dist`,
	Args: cobra.MaximumNArgs(2),
	RunE: runPack,
}

func runPack(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	inputDir := appConfig.AssetsDir
	outputDir := appConfig.ResourcesDir
	if len(args) > 0 {
		inputDir = args[0]
	}
	if len(args) > 1 {
		outputDir = args[1]
	}

	fmt.Println(ui.FormatPack("Packing assets from " + ui.StyleBold.Render(inputDir)))

	resp, err := packService.Execute(ctx, services.PackRequest{
		InputDir:  inputDir,
		OutputDir: outputDir,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Packing failed"))
		return err
	}

	fmt.Println(ui.RenderKeyValue("Resources packed", strconv.Itoa(resp.ResourcesPacked)))

	if len(resp.Errors) > 0 {
		fmt.Println(ui.FormatWarning(strconv.Itoa(resp.FilesSkipped) + " file(s) skipped:"))

		table := ui.NewTable([]ui.TableColumn{
			{Header: "#", Align: "right"},
			{Header: "Error"},
		})
		for i, packErr := range resp.Errors {
			table.AddRow([]string{strconv.Itoa(i + 1), packErr.Error()})
		}
		fmt.Print(table.Render())
		return nil
	}

	fmt.Println(ui.FormatSuccess("Done"))
	return nil
}
