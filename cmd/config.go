package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sheetpack/sheetpack/pkg/config"
	"github.com/sheetpack/sheetpack/pkg/ui"
)

var configInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration the pipeline runs with: sheetpack.yml from the
working directory merged over the built-in defaults.

With --init, the effective configuration is also written to sheetpack.yml
as a starting point to edit.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false,
		"write the effective configuration to "+config.DefaultFileName)
}

func runConfig(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.FormatTitle("Configuration"))
	fmt.Println(ui.RenderKeyValue("sheets_dir", appConfig.SheetsDir))
	fmt.Println(ui.RenderKeyValue("assets_dir", appConfig.AssetsDir))
	fmt.Println(ui.RenderKeyValue("resources_dir", appConfig.ResourcesDir))
	fmt.Println(ui.RenderKeyValue("max_frame_count", strconv.Itoa(appConfig.MaxFrameCount)))
	fmt.Println(ui.RenderKeyValue("watch_debounce_ms", strconv.Itoa(appConfig.WatchDebounceMS)))
	fmt.Println(ui.RenderKeyValue("color_theme", appConfig.ColorTheme))
	fmt.Println(ui.RenderKeyValue("log_level", appConfig.LogLevel))

	if !configInit {
		return nil
	}

	if err := appConfig.Save(config.DefaultFileName); err != nil {
		return err
	}
	fmt.Println(ui.FormatInfo("Wrote " + ui.FormatBold(config.DefaultFileName)))
	return nil
}
