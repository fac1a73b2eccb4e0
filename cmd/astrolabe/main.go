// Command astrolabe computes zodiac charts for the Sun, Moon and planets.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/astrolabe/internal/adapters/driven/config/file"
	"github.com/custodia-labs/astrolabe/internal/adapters/driven/ephemeris"
	"github.com/custodia-labs/astrolabe/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/astrolabe/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/cli"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driven"
	"github.com/custodia-labs/astrolabe/internal/core/services"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		// The error has already been printed.
		os.Exit(1)
	}
}

func run() error {
	var config driven.ConfigStore
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config file unavailable, using defaults: %v\n", err)
		config = memory.NewConfigStore()
	} else {
		config = configStore
		cli.SetConfigWatcher(configStore)
	}
	settings := services.NewSettingsService(config)

	current, err := settings.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading settings: %v\n", err)
		return err
	}
	eph, err := ephemeris.FromSettings(current)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	positions := services.NewPositionService(eph)
	placements := services.NewPlacementBuilder(positions)

	var charts driven.ChartStore
	store, err := sqlite.NewStore("")
	if err != nil {
		// History still works for the lifetime of the process.
		fmt.Fprintf(os.Stderr, "Warning: history database unavailable, charts are kept in memory: %v\n", err)
		charts = memory.NewChartStore()
	} else {
		defer store.Close()
		charts = store.ChartStore()
	}

	cli.SetServices(cli.Services{
		Chart:     services.NewChartService(placements, settings),
		Placement: placements,
		Transit:   services.NewTransitService(placements),
		History:   services.NewHistoryService(charts, settings),
		Settings:  settings,
	})
	cli.SetVersion(version)

	return cli.Execute()
}
