package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage saved charts",
	Long:  `List, show and delete charts saved with 'astrolabe chart'.`,
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved charts, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved chart",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved chart",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of charts (0 = all)")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	records, err := historyService.List(cmd.Context(), domain.HistoryFilter{Limit: historyLimit})
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		return outputJSON(cmd, records)
	}

	p := newPrinter(cmd)
	if len(records) == 0 {
		p.line("No saved charts.")
		return nil
	}

	p.header("Saved Charts")
	for i := range records {
		label := records[i].Label
		if label == "" {
			label = "-"
		}
		p.line("  %s  %-20s  %s", records[i].ID, records[i].Chart.Date(), label)
		p.dim("    saved %s", records[i].CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	record, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("chart %s not found", args[0])
		}
		return fmt.Errorf("failed to get chart: %w", err)
	}

	if historyJSON {
		return outputJSON(cmd, record)
	}

	p := newPrinter(cmd)
	if record.Label != "" {
		p.dim("%s", record.Label)
	}
	outputChartTable(p, record.Chart)
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Delete(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("chart %s not found", args[0])
		}
		return fmt.Errorf("failed to delete chart: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}
