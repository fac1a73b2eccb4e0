package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
	"github.com/custodia-labs/astrolabe/internal/logger"
)

var (
	chartJSON  bool
	chartSave  bool
	chartLabel string
)

var chartCmd = &cobra.Command{
	Use:   "chart [date]",
	Short: "Compute a full chart",
	Long: `Computes the sign, degrees and retrograde state of the Sun, Moon and
planets for a date.

When history is enabled the chart is saved automatically; --save forces a
save regardless of the setting.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().BoolVar(&chartJSON, "json", false, "output the chart as JSON")
	chartCmd.Flags().BoolVar(&chartSave, "save", false, "save the chart to history")
	chartCmd.Flags().StringVarP(&chartLabel, "label", "l", "", "label for the saved chart (implies --save)")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	if chartService == nil {
		return errors.New("chart service not configured")
	}

	date, err := parseDateArg(args, 0)
	if err != nil {
		return err
	}

	chart, err := chartService.Build(cmd.Context(), date)
	if err != nil {
		return fmt.Errorf("chart failed: %w", err)
	}

	if chartJSON {
		if err := outputJSON(cmd, chart); err != nil {
			return err
		}
	} else {
		outputChartTable(newPrinter(cmd), chart)
	}

	return saveChart(cmd, chart)
}

// saveChart records the chart when asked to or when history is enabled.
func saveChart(cmd *cobra.Command, chart *domain.Chart) error {
	explicit := chartSave || chartLabel != ""
	if historyService == nil {
		if explicit {
			return domain.ErrHistoryUnavailable
		}
		return nil
	}
	if !explicit && !historyService.Enabled() {
		return nil
	}

	record, err := historyService.Save(cmd.Context(), chart, chartLabel)
	if err != nil {
		if explicit {
			return fmt.Errorf("saving chart: %w", err)
		}
		logger.Warn("chart not saved: %v", err)
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Saved as %s\n", record.ID)
	return nil
}

func outputChartTable(p *printer, chart *domain.Chart) {
	p.header("Chart for %s (JD %.5f)", chart.Date(), chart.DayCount().Float())
	for _, pl := range chart.Placements() {
		p.line("  %s", p.placement(pl))
	}

	retro := chart.Retrogrades()
	if len(retro) == 0 {
		return
	}
	names := make([]string, len(retro))
	for i, body := range retro {
		names[i] = body.String()
	}
	p.line("")
	p.dim("Retrograde: %s", strings.Join(names, ", "))
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
