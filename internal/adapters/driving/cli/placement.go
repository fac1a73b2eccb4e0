package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

var placementJSON bool

var placementCmd = &cobra.Command{
	Use:   "placement <body> [date]",
	Short: "Place a single body in the zodiac",
	Long: `Computes the sign, degrees and retrograde state of one body.

Bodies: Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPlacement,
}

func init() {
	placementCmd.Flags().BoolVar(&placementJSON, "json", false, "output the placement as JSON")
	rootCmd.AddCommand(placementCmd)
}

func runPlacement(cmd *cobra.Command, args []string) error {
	if placementService == nil {
		return errors.New("placement service not configured")
	}

	body, err := domain.ParseBody(args[0])
	if err != nil {
		return err
	}

	date, err := parseDateArg(args, 1)
	if err != nil {
		return err
	}

	placement, err := placementService.Build(cmd.Context(), body, date.DayCount())
	if err != nil {
		return fmt.Errorf("placement failed: %w", err)
	}

	if placementJSON {
		return outputJSON(cmd, placement)
	}

	p := newPrinter(cmd)
	p.line("%s  %s", date, p.placement(placement))
	return nil
}
