// Package history provides the saved-chart browser for the TUI.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/astrolabe/internal/core/domain"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driving"
)

// DefaultLimit caps how many saved charts are listed.
const DefaultLimit = 100

var errNoHistoryService = errors.New("history service not available")

// View lists saved charts, newest first.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	historyService driving.HistoryService
	ctx            context.Context

	records  []domain.ChartRecord
	selected int
	loaded   bool

	width  int
	height int
	ready  bool
}

// NewView creates a new history view.
func NewView(s *styles.Styles, km *keymap.KeyMap, historyService driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.HistoryHelp())

	return &View{
		styles:         s,
		keymap:         km,
		statusbar:      bar,
		historyService: historyService,
		ctx:            context.Background(),
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the saved charts.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	svc, ctx := v.historyService, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.HistoryLoaded{Err: errNoHistoryService}
		}
		records, err := svc.List(ctx, domain.HistoryFilter{Limit: DefaultLimit})
		return messages.HistoryLoaded{Records: records, Err: err}
	}
}

func (v *View) remove(id string) tea.Cmd {
	svc, ctx := v.historyService, v.ctx
	return func() tea.Msg {
		return messages.HistoryDeleted{ID: id, Err: svc.Delete(ctx, id)}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.HistoryLoaded:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError, msg.Err.Error())
			return v, nil
		}
		v.records = msg.Records
		v.loaded = true
		if v.selected >= len(v.records) {
			v.selected = max(len(v.records)-1, 0)
		}
		return v, nil

	case messages.HistoryDeleted:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError, msg.Err.Error())
			return v, nil
		}
		v.statusbar.SetState(status.StateSaved, "Deleted "+msg.ID)
		return v, v.load()

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
		if v.selected < len(v.records)-1 {
			v.selected++
		}
	case keymap.Matches(key, v.keymap.Select):
		if record, ok := v.Selected(); ok {
			return v, func() tea.Msg {
				return messages.HistorySelected{Record: record}
			}
		}
	case keymap.Matches(key, v.keymap.Delete):
		if record, ok := v.Selected(); ok && v.historyService != nil {
			return v, v.remove(record.ID)
		}
	}
	return v, nil
}

// Selected returns the record under the cursor.
func (v *View) Selected() (domain.ChartRecord, bool) {
	if v.selected < 0 || v.selected >= len(v.records) {
		return domain.ChartRecord{}, false
	}
	return v.records[v.selected], true
}

// View renders the history list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("History"))
	b.WriteString("\n\n")

	if v.historyService != nil && !v.historyService.Enabled() {
		b.WriteString(v.styles.Warning.Render("History is disabled. Set history.enabled to save charts."))
		b.WriteString("\n\n")
	}

	if v.loaded {
		b.WriteString(v.renderList())
	} else {
		b.WriteString(v.styles.Muted.Render("Loading history..."))
	}

	b.WriteString("\n\n")
	v.statusbar.SetWidth(v.width)
	b.WriteString(v.statusbar.View())

	return b.String()
}

func (v *View) renderList() string {
	if len(v.records) == 0 {
		return v.styles.Muted.Render("No saved charts.")
	}

	var b strings.Builder
	for i, r := range v.records {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Subtitle
		}

		date := ""
		if r.Chart != nil {
			date = r.Chart.Date().String()
		}
		line := fmt.Sprintf("%-20s  %s", date, r.CreatedAt.Local().Format("2006-01-02 15:04"))
		b.WriteString(cursor + style.Render(line))
		if r.Label != "" {
			b.WriteString("  " + v.styles.Muted.Render(r.Label))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}
