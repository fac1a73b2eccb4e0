// Package cli provides the cobra command tree for the astrolabe binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/astrolabe/internal/core/ports/driving"
	"github.com/custodia-labs/astrolabe/internal/logger"
)

// version is set at build time.
var version = "dev"

var verbose bool

var (
	chartService     driving.ChartService
	placementService driving.PlacementService
	transitService   driving.TransitService
	historyService   driving.HistoryService
	settingsService  driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "astrolabe",
	Short: "Zodiac charts from planetary positions",
	Long: `Astrolabe computes where the Sun, Moon and planets stand in the zodiac.

For any date it reports each body's sign, the degrees it has travelled
through that sign and whether it is moving retrograde. Dates are UTC and
accept YYYY-MM-DD or YYYY-MM-DDTHH:MM[:SS]; omitting the date means now.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
}

// Services holds the driving ports used by the commands.
type Services struct {
	Chart     driving.ChartService
	Placement driving.PlacementService
	Transit   driving.TransitService
	History   driving.HistoryService
	Settings  driving.SettingsService
}

// SetServices wires the services used by the commands.
func SetServices(s Services) {
	chartService = s.Chart
	placementService = s.Placement
	transitService = s.Transit
	historyService = s.History
	settingsService = s.Settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
