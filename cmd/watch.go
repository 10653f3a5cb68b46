package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/sheetpack/sheetpack/internal/core/services"
	"github.com/sheetpack/sheetpack/pkg/logging"
	"github.com/sheetpack/sheetpack/pkg/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch [input_sheets_dir] [output_assets_dir]",
	Short: "Re-convert sheets whenever they change",
	Long: `Run an initial conversion, then keep watching the input directory and
re-run the conversion whenever a sheet description is created or saved.
Events are debounced (watch_debounce_ms in sheetpack.yml) so editors that
write in several bursts trigger a single run.

Press Ctrl+C to stop.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	inputDir := appConfig.SheetsDir
	outputDir := appConfig.AssetsDir
	if len(args) > 0 {
		inputDir = args[0]
	}
	if len(args) > 1 {
		outputDir = args[1]
	}

	req := services.ConvertRequest{InputDir: inputDir, OutputDir: outputDir}

	// Initial pass before watching.
	if _, err := convertService.Execute(ctx, req); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(inputDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", inputDir, err)
	}

	fmt.Println(ui.FormatPack("Watching " + ui.StyleBold.Render(inputDir)))
	fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))

	debounce := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond
	var timer *time.Timer
	runs := make(chan struct{}, 1)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case runs <- struct{}{}:
				default:
				}
			})

		case <-runs:
			resp, err := convertService.Execute(ctx, req)
			if err != nil {
				logging.Error("conversion failed: %v", err)
				continue
			}
			fmt.Println(ui.FormatSuccess(fmt.Sprintf("Converted %d sheet(s), %d animation(s)",
				resp.SheetsConverted, resp.AnimationsWritten)))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn("watcher error: %v", err)

		case <-sigs:
			fmt.Println()
			fmt.Println(ui.FormatMuted("Stopped"))
			return nil
		}
	}
}
