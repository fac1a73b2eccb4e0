// Package tui is the interactive terminal front end: a menu, a chart you
// can step through time, the saved-chart browser and a settings editor.
package tui

import (
	"errors"

	"github.com/custodia-labs/astrolabe/internal/core/ports/driving"
)

// ErrMissingChartService is returned by NewApp when Ports has no Chart.
var ErrMissingChartService = errors.New("tui: chart service is required")

// Ports are the services the TUI calls into. History and Settings may be
// nil; the menu then marks history as disabled and settings use defaults.
type Ports struct {
	Chart    driving.ChartService
	History  driving.HistoryService
	Settings driving.SettingsService
}

// Validate reports ErrMissingChartService when Chart is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Chart == nil {
		return ErrMissingChartService
	}
	return nil
}
