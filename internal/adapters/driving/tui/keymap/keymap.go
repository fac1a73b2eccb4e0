// Package keymap defines keybindings for the TUI.
package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding the views respond to.
type KeyMap struct {
	// Global.
	Quit key.Binding
	Help key.Binding
	Back key.Binding

	// Lists: menu, history and settings.
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Toggle key.Binding
	Delete key.Binding

	// Chart navigation through time.
	Earlier key.Binding
	Later   key.Binding
	Unit    key.Binding
	Now     key.Binding
	GoTo    key.Binding
	Save    key.Binding
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

// DefaultKeyMap returns the default keybindings. List movement follows vi,
// and h/l step the chart so the same hand moves through time.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: bind("q", "quit", "q", "ctrl+c"),
		Help: bind("?", "help", "?"),
		Back: bind("esc", "back", "esc"),

		Up:     bind("↑/k", "up", "up", "k"),
		Down:   bind("↓/j", "down", "down", "j"),
		Select: bind("enter", "select", "enter"),
		Toggle: bind("enter/space", "change", "enter", " "),
		Delete: bind("d", "delete", "d"),

		Earlier: bind("←/h", "earlier", "left", "h"),
		Later:   bind("→/l", "later", "right", "l"),
		Unit:    bind("tab", "step", "tab"),
		Now:     bind("n", "now", "n"),
		GoTo:    bind("g", "go to date", "g"),
		Save:    bind("s", "save", "s"),
	}
}

// ShortHelp returns the bindings shown when a view has no hints of its own.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// MenuHelp returns the bindings for the main menu.
func (k *KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Help, k.Quit}
}

// ChartHelp returns the bindings for the chart view.
func (k *KeyMap) ChartHelp() []key.Binding {
	return []key.Binding{k.Earlier, k.Later, k.Unit, k.Now, k.GoTo, k.Save, k.Back}
}

// HistoryHelp returns the bindings for the history view.
func (k *KeyMap) HistoryHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Delete, k.Back}
}

// SettingsHelp returns the bindings for the settings view.
func (k *KeyMap) SettingsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back}
}

// FullHelp groups every binding in columns for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Earlier, k.Later, k.Unit, k.Now, k.GoTo},
		{k.Save, k.Delete, k.Back},
		{k.Help, k.Quit},
	}
}

// Matches reports whether keyStr, as returned by tea.KeyMsg.String,
// is one of the binding's keys.
func Matches(keyStr string, binding key.Binding) bool {
	return slices.Contains(binding.Keys(), keyStr)
}
