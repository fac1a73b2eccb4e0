// Package status provides the one-line status bar shown under each view.
package status

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/styles"
)

// State is what the bar reports on its left side.
type State int

const (
	StateReady State = iota
	StateLoading
	StateError
	StateSaved
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateSaved:
		return "saved"
	default:
		return "ready"
	}
}

// Bar shows a state message on the left and key hints on the right.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model
	hints  []key.Binding

	state   State
	message string
	width   int
}

// NewBar creates a status bar in the ready state.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	h := help.New()
	h.ShortSeparator = "  "

	return &Bar{
		styles: s,
		keymap: km,
		help:   h,
		hints:  km.ShortHelp(),
		width:  80,
	}
}

// View renders the bar at its full width.
func (s *Bar) View() string {
	left := s.status()
	right := s.help.ShortHelpView(s.hints)

	// StatusBar pads one cell each side.
	gap := max(s.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *Bar) status() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Computing...")
	case StateError:
		if s.message == "" {
			return s.styles.Error.Render("Error")
		}
		return s.styles.Error.Render("Error: " + s.message)
	case StateSaved:
		return s.styles.Success.Render(s.message)
	}
	if s.message == "" {
		return s.styles.Muted.Render("Ready")
	}
	return s.styles.Normal.Render(s.message)
}

// SetState sets the state and its message.
func (s *Bar) SetState(state State, message string) {
	s.state = state
	s.message = message
}

// Clear returns the bar to the ready state.
func (s *Bar) Clear() {
	s.SetState(StateReady, "")
}

func (s *Bar) State() State    { return s.state }
func (s *Bar) Message() string { return s.message }
func (s *Bar) Width() int      { return s.width }

// SetHints replaces the key hints on the right.
func (s *Bar) SetHints(bindings []key.Binding) {
	s.hints = bindings
}

// SetWidth sets the bar width in cells.
func (s *Bar) SetWidth(width int) {
	s.width = width
}
