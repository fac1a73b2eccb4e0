// Package chart provides the steppable chart view for the TUI.
package chart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/astrolabe/internal/core/domain"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driving"
)

var (
	errNoChartService  = errors.New("chart service not available")
	errHistoryDisabled = errors.New("history is not available")
	errNothingToSave   = errors.New("no chart to save")
)

// Unit is the amount of time one step moves the chart.
type Unit int

const (
	UnitHour Unit = iota
	UnitDay
	UnitMonth
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case UnitHour:
		return "hour"
	case UnitDay:
		return "day"
	case UnitMonth:
		return "month"
	default:
		return "unknown"
	}
}

// Next cycles hour, day, month.
func (u Unit) Next() Unit {
	return (u + 1) % 3
}

// Step moves t by n units. Months follow the calendar.
func (u Unit) Step(t time.Time, n int) time.Time {
	switch u {
	case UnitHour:
		return t.Add(time.Duration(n) * time.Hour)
	case UnitMonth:
		return t.AddDate(0, n, 0)
	default:
		return t.AddDate(0, 0, n)
	}
}

// View shows every placement for one instant and steps it through time.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.DateInput
	statusbar *status.Bar

	chartService   driving.ChartService
	historyService driving.HistoryService
	ctx            context.Context
	now            func() time.Time

	at        time.Time
	requested domain.Date
	unit      Unit
	chart     *domain.Chart
	label     string
	symbols   bool
	editing   bool

	width  int
	height int
	ready  bool
}

// NewView creates a new chart view. The history service is optional.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	chartService driving.ChartService,
	historyService driving.HistoryService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.ChartHelp())

	v := &View{
		styles:         s,
		keymap:         km,
		input:          input.NewDateInput(s),
		statusbar:      bar,
		chartService:   chartService,
		historyService: historyService,
		ctx:            context.Background(),
		now:            time.Now,
		unit:           UnitDay,
		width:          80,
		height:         24,
	}
	v.at = v.currentMinute()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetSymbols switches between glyphs and names.
func (v *View) SetSymbols(symbols bool) {
	v.symbols = symbols
}

// Init computes the chart for the current instant.
func (v *View) Init() tea.Cmd {
	return v.load()
}

// Show displays a saved chart and steps from its instant.
func (v *View) Show(record domain.ChartRecord) {
	if record.Chart == nil {
		return
	}
	v.chart = record.Chart
	v.label = record.Label
	v.requested = record.Chart.Date()
	v.at = v.requested.Time()
	v.editing = false
	v.input.Blur()
	v.statusbar.SetState(status.StateReady, record.ID)
}

// At returns the instant being charted.
func (v *View) At() time.Time {
	return v.at
}

// Unit returns the current step unit.
func (v *View) Unit() Unit {
	return v.unit
}

// Chart returns the chart on screen, or nil before the first load.
func (v *View) Chart() *domain.Chart {
	return v.chart
}

// Editing reports whether the date prompt has focus.
func (v *View) Editing() bool {
	return v.editing
}

func (v *View) currentMinute() time.Time {
	return v.now().UTC().Truncate(time.Minute)
}

// load returns a command that computes the chart at v.at.
func (v *View) load() tea.Cmd {
	date := domain.DateFromTime(v.at)
	v.requested = date
	v.statusbar.SetState(status.StateLoading, "")

	svc, ctx := v.chartService, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.ChartLoaded{Err: errNoChartService}
		}
		chart, err := svc.Build(ctx, date)
		return messages.ChartLoaded{Chart: chart, Err: err}
	}
}

// save returns a command that writes the chart on screen to history.
func (v *View) save() tea.Cmd {
	if v.historyService == nil || !v.historyService.Enabled() {
		v.statusbar.SetState(status.StateError, errHistoryDisabled.Error())
		return nil
	}
	if v.chart == nil {
		v.statusbar.SetState(status.StateError, errNothingToSave.Error())
		return nil
	}

	svc, ctx, chart, label := v.historyService, v.ctx, v.chart, v.label
	return func() tea.Msg {
		record, err := svc.Save(ctx, chart, label)
		return messages.ChartSaved{Record: record, Err: err}
	}
}

// Update handles messages for the chart view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ChartLoaded:
		v.handleChartLoaded(msg)
		return v, nil

	case messages.ChartSaved:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError, msg.Err.Error())
			return v, nil
		}
		v.statusbar.SetState(status.StateSaved, "Saved as "+msg.Record.ID)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	if v.editing {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleChartLoaded(msg messages.ChartLoaded) {
	if msg.Err != nil {
		v.statusbar.SetState(status.StateError, msg.Err.Error())
		return
	}
	// A slower computation for an instant the user has stepped past.
	if msg.Chart == nil || msg.Chart.Date() != v.requested {
		return
	}
	v.chart = msg.Chart
	v.statusbar.Clear()
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.editing {
		return v.handleInputKey(msg)
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(key, v.keymap.Earlier):
		return v, v.step(-1)
	case keymap.Matches(key, v.keymap.Later):
		return v, v.step(1)
	case keymap.Matches(key, v.keymap.Unit):
		v.unit = v.unit.Next()
		return v, nil
	case keymap.Matches(key, v.keymap.Now):
		v.at = v.currentMinute()
		v.label = ""
		return v, v.load()
	case keymap.Matches(key, v.keymap.GoTo):
		v.editing = true
		v.input.SetValue(v.at.Format("2006-01-02T15:04"))
		return v, v.input.Focus()
	case keymap.Matches(key, v.keymap.Save):
		return v, v.save()
	}
	return v, nil
}

func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.editing = false
		v.input.Blur()
		v.statusbar.Clear()
		return v, nil
	case tea.KeyEnter:
		date, err := v.input.Date()
		if err != nil {
			v.statusbar.SetState(status.StateError, err.Error())
			return v, nil
		}
		v.editing = false
		v.input.Blur()
		v.at = date.Time()
		v.label = ""
		return v, v.load()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) step(n int) tea.Cmd {
	v.at = v.unit.Step(v.at, n)
	v.label = ""
	return v.load()
}

// View renders the chart view.
func (v *View) View() string {
	var b strings.Builder

	title := "Chart"
	if v.label != "" {
		title += " · " + v.label
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%s UTC  step: %s", v.at.Format("2006-01-02 15:04"), v.unit)))
	b.WriteString("\n\n")

	if v.editing {
		b.WriteString(v.input.View())
		b.WriteString("\n\n")
	}

	if v.chart == nil {
		b.WriteString(v.styles.Muted.Render("Computing chart..."))
	} else {
		b.WriteString(v.renderChart())
	}

	b.WriteString("\n\n")
	v.statusbar.SetWidth(v.width)
	b.WriteString(v.statusbar.View())

	return b.String()
}

func (v *View) renderChart() string {
	var b strings.Builder

	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("JD %.5f", v.chart.DayCount().Float())))
	b.WriteString("\n")

	for _, p := range v.chart.Placements() {
		body, sign := p.Body.String(), p.Sign.String()
		if v.symbols {
			body = p.Body.Symbol() + " " + body
			sign = p.Sign.Symbol() + " " + sign
		}

		b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%-10s %7s  ", body, p.Degrees)))
		b.WriteString(v.styles.Sign(p.Sign).Render(fmt.Sprintf("%-13s", sign)))
		if p.Retrograde {
			retro := "(R)"
			if v.symbols {
				retro = "℞"
			}
			b.WriteString(" " + v.styles.Retrograde.Render(retro))
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
