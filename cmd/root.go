package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheetpack/sheetpack/internal/adapters/codec"
	"github.com/sheetpack/sheetpack/internal/adapters/repository"
	"github.com/sheetpack/sheetpack/internal/core/services"
	"github.com/sheetpack/sheetpack/pkg/config"
	"github.com/sheetpack/sheetpack/pkg/logging"
	"github.com/sheetpack/sheetpack/pkg/stringid"
	"github.com/sheetpack/sheetpack/pkg/ui"
)

var (
	// Global configuration
	appConfig *config.Config

	// Services
	convertService *services.ConvertService
	packService    *services.PackService

	// Adapters
	assetRepo      *repository.FileAssetRepository
	resourceWriter *codec.ResourceWriter
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sheetpack",
	Short: "Sprite-sheet asset pipeline",
	Long: ui.StyleTitle.Render("sheetpack") + " - Sprite-Sheet Asset Pipeline\n\n" +
		"Converts Aseprite sheet exports into engine assets, then packs those\n" +
		"assets into binary resources addressed by numeric identifiers.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	appConfig = cfg

	ui.SetTheme(cfg.ColorTheme)
	logging.SetLevel(cfg.LogLevel)

	ids := stringid.Service{}

	// Adapters
	assetRepo = repository.NewFileAssetRepository(ids)
	resourceWriter = codec.NewResourceWriter(ids)

	// Services
	convertService = services.NewConvertService(assetRepo, ids, uint16(cfg.MaxFrameCount))
	packService = services.NewPackService(assetRepo, ids, resourceWriter)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
