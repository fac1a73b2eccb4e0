package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for astrolabe.

The chart view starts at the current minute and steps through time, so
ingresses and retrograde stations can be watched as they happen.

Controls:
  ←/h, →/l - Step earlier / later
  Tab      - Cycle step between hour, day and month
  n        - Jump to now
  g        - Go to a date
  s        - Save the chart to history
  Esc      - Back / Cancel
  ?        - Help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// newTUIApp builds the TUI from the wired services.
func newTUIApp(cmd *cobra.Command) (*tui.App, error) {
	app, err := tui.NewApp(&tui.Ports{
		Chart:    chartService,
		History:  historyService,
		Settings: settingsService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.WithContext(ctx), nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newTUIApp(cmd)
	if err != nil {
		return err
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
