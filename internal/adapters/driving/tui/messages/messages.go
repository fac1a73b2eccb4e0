// Package messages carries results from background commands back to the
// TUI models, and lets a view ask the app to switch screens.
package messages

import "github.com/custodia-labs/astrolabe/internal/core/domain"

// ViewType names a screen.
type ViewType int

const (
	ViewMenu ViewType = iota
	ViewChart
	ViewHistory
	ViewSettings
	ViewHelp
)

var viewNames = [...]string{"menu", "chart", "history", "settings", "help"}

func (v ViewType) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return "unknown"
	}
	return viewNames[v]
}

// ViewChanged asks the app to show View.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred reports a failure that no view handled.
type ErrorOccurred struct {
	Err error
}

// Quit ends the program.
type Quit struct{}

// ChartLoaded carries a computed chart back to the model.
type ChartLoaded struct {
	Chart *domain.Chart
	Err   error
}

// ChartSaved signals a chart was written to history.
type ChartSaved struct {
	Record *domain.ChartRecord
	Err    error
}

// HistoryLoaded carries saved charts, newest first.
type HistoryLoaded struct {
	Records []domain.ChartRecord
	Err     error
}

// HistorySelected signals a saved chart was opened.
type HistorySelected struct {
	Record domain.ChartRecord
}

// HistoryDeleted signals a saved chart was removed.
type HistoryDeleted struct {
	ID  string
	Err error
}

// SettingsLoaded carries the configurable keys and their current values.
type SettingsLoaded struct {
	Keys   []string
	Values map[string]string
	Err    error
}

// SettingsSaved signals a setting was changed.
type SettingsSaved struct {
	Key string
	Err error
}
