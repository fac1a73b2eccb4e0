// Package menu provides the main navigation menu for the TUI.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/styles"
)

// Item is one menu entry. Selecting it opens View, or quits when Quit is set.
type Item struct {
	Label       string
	Description string
	View        messages.ViewType
	Quit        bool

	// Hint is a short note rendered after the label, e.g. "disabled".
	Hint string
}

func defaultItems() []Item {
	return []Item{
		{Label: "Chart", Description: "Step through time and watch the sky move", View: messages.ViewChart},
		{Label: "History", Description: "Reopen or delete saved charts", View: messages.ViewHistory},
		{Label: "Settings", Description: "Symbols, history and computation options", View: messages.ViewSettings},
		{Label: "Help", Description: "Keys and conventions", View: messages.ViewHelp},
		{Label: "Quit", Quit: true},
	}
}

// View is the main menu.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	items    []Item
	selected int

	width  int
	height int
	ready  bool
}

// NewView creates the menu with its default items.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		help:   help.New(),
		items:  defaultItems(),
		width:  80,
		height: 24,
	}
}

// Init implements the view lifecycle; the menu has nothing to load.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and emits navigation messages.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		return v, v.handleKey(msg.String())
	}
	return v, nil
}

func (v *View) handleKey(key string) tea.Cmd {
	switch {
	case keymap.Matches(key, v.keymap.Up):
		v.selected = max(v.selected-1, 0)
	case keymap.Matches(key, v.keymap.Down):
		v.selected = min(v.selected+1, len(v.items)-1)
	case keymap.Matches(key, v.keymap.Select):
		return v.choose(v.items[v.selected])
	case keymap.Matches(key, v.keymap.Quit):
		return quit
	}
	return nil
}

func (v *View) choose(item Item) tea.Cmd {
	if item.Quit {
		return quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

func quit() tea.Msg {
	return messages.Quit{}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Astrolabe"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Sun, Moon and planets through the zodiac"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		if i == v.selected {
			b.WriteString("> " + v.styles.Subtitle.Render(item.Label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(item.Label))
		}
		if item.Hint != "" {
			b.WriteString(" " + v.styles.Warning.Render("("+item.Hint+")"))
		}
		if i == v.selected && item.Description != "" {
			b.WriteString("  " + v.styles.Muted.Render(item.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.help.ShortHelpView(v.keymap.MenuHelp()))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width
	v.ready = true
}

// Selected returns the index under the cursor.
func (v *View) Selected() int {
	return v.selected
}

// SetHint attaches a note to the items opening view. Quit never takes one.
func (v *View) SetHint(view messages.ViewType, hint string) {
	for i := range v.items {
		if !v.items[i].Quit && v.items[i].View == view {
			v.items[i].Hint = hint
		}
	}
}
