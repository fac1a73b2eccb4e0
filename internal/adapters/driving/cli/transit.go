package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

var (
	transitDays   int
	transitStep   time.Duration
	transitJSON   bool
	transitEvents bool
)

var transitCmd = &cobra.Command{
	Use:   "transit <body> [date]",
	Short: "Follow a body through the zodiac",
	Long: `Samples one body from a date at a fixed step and marks sign ingresses
and retrograde stations.

Examples:
  # Mercury day by day for a month
  astrolabe transit mercury 2020-10-01

  # The Moon every six hours for three days
  astrolabe transit moon --days 3 --step 6h

  # Only the days on which something changes
  astrolabe transit venus --days 365 --events`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTransit,
}

func init() {
	transitCmd.Flags().IntVarP(&transitDays, "days", "d", 30, "number of days to follow")
	transitCmd.Flags().DurationVar(&transitStep, "step", 24*time.Hour, "sampling interval")
	transitCmd.Flags().BoolVar(&transitJSON, "json", false, "output steps as JSON")
	transitCmd.Flags().BoolVar(&transitEvents, "events", false, "only show ingresses and stations")
	rootCmd.AddCommand(transitCmd)
}

func runTransit(cmd *cobra.Command, args []string) error {
	if transitService == nil {
		return errors.New("transit service not configured")
	}

	body, err := domain.ParseBody(args[0])
	if err != nil {
		return err
	}

	from, err := parseDateArg(args, 1)
	if err != nil {
		return err
	}

	steps, err := transitService.Walk(cmd.Context(), body, from, transitDays, transitStep)
	if err != nil {
		return fmt.Errorf("transit failed: %w", err)
	}

	if transitEvents {
		steps = transitEventsOnly(steps)
	}

	if transitJSON {
		return outputJSON(cmd, steps)
	}

	p := newPrinter(cmd)
	p.header("%s from %s, %d days every %s", body, from, transitDays, transitStep)
	if len(steps) == 0 {
		p.line("No ingresses or stations.")
		return nil
	}
	for _, step := range steps {
		row := fmt.Sprintf("  %-20s  %s", step.Date, p.placement(step.Placement))
		if marks := p.markers(step); marks != "" {
			row += "  " + marks
		}
		p.line("%s", row)
	}
	return nil
}

// transitEventsOnly keeps the steps that mark an ingress or a station.
func transitEventsOnly(steps []domain.TransitStep) []domain.TransitStep {
	var events []domain.TransitStep
	for _, step := range steps {
		if step.Ingress || step.Station {
			events = append(events, step)
		}
	}
	return events
}
