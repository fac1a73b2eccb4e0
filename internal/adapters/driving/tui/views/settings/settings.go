// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/astrolabe/internal/core/domain"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driving"
)

// errNoService is reported when the view has no settings service to talk to.
var errNoService = errors.New("settings service not available")

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	keymap          *keymap.KeyMap
	help            help.Model
	settingsService driving.SettingsService

	keys     []string
	values   map[string]string
	selected int
	loaded   bool
	err      error

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, km *keymap.KeyMap, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:          s,
		keymap:          km,
		help:            help.New(),
		settingsService: settingsService,
		values:          make(map[string]string),
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that reads every key and its current value.
func (v *View) loadSettings() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsLoaded{Err: errNoService}
		}
		keys := svc.Keys()
		values := make(map[string]string, len(keys))
		for _, key := range keys {
			val, err := svc.Value(key)
			if err != nil {
				return messages.SettingsLoaded{Err: fmt.Errorf("reading %s: %w", key, err)}
			}
			values[key] = val
		}
		return messages.SettingsLoaded{Keys: keys, Values: values}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.keys = msg.Keys
		v.values = msg.Values
		v.loaded = true
		v.err = nil
		if v.selected >= len(v.keys) {
			v.selected = max(len(v.keys)-1, 0)
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(v.keys)-1 {
			v.selected++
		}
	case keymap.Matches(key, v.keymap.Toggle):
		return v, v.changeSelected()
	}
	return v, nil
}

// changeSelected returns a command that stores the next value of the
// selected key, or nil when the key has no alternative value.
func (v *View) changeSelected() tea.Cmd {
	if v.settingsService == nil || len(v.keys) == 0 {
		return nil
	}
	key := v.keys[v.selected]
	next, ok := nextValue(v.values[key])
	if !ok {
		return nil
	}

	svc := v.settingsService
	return func() tea.Msg {
		return messages.SettingsSaved{Key: key, Err: svc.SetValue(key, next)}
	}
}

// nextValue flips booleans and cycles ephemeris providers.
func nextValue(current string) (string, bool) {
	if b, err := strconv.ParseBool(current); err == nil {
		return strconv.FormatBool(!b), true
	}

	providers := domain.AllEphemerisProviders()
	for i, p := range providers {
		if p.String() == current {
			next := providers[(i+1)%len(providers)].String()
			return next, next != current
		}
	}
	return current, false
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if !v.loaded {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	width := 0
	for _, key := range v.keys {
		width = max(width, len(key))
	}

	for i, key := range v.keys {
		cursor := "  "
		label := v.styles.Normal.Render(fmt.Sprintf("%-*s", width, key))
		if i == v.selected {
			cursor = "> "
			label = v.styles.Subtitle.Render(fmt.Sprintf("%-*s", width, key))
		}
		b.WriteString(cursor)
		b.WriteString(label)
		b.WriteString("  ")
		b.WriteString(v.renderValue(v.values[key]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.help.ShortHelpView(v.keymap.SettingsHelp()))

	return b.String()
}

func (v *View) renderValue(val string) string {
	switch val {
	case "true":
		return v.styles.Success.Render(val)
	case "false":
		return v.styles.Muted.Render(val)
	default:
		return v.styles.Normal.Render(val)
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width
	v.ready = true
}

// Selected returns the key under the cursor, or "" before settings load.
func (v *View) Selected() string {
	if v.selected < 0 || v.selected >= len(v.keys) {
		return ""
	}
	return v.keys[v.selected]
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.selected = 0
	v.err = nil
}
