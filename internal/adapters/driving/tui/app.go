package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/views/chart"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// App is the root bubbletea model. It owns one instance of every view and
// routes messages to whichever is on screen.
type App struct {
	ports *Ports
	ctx   context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	menuView     *menu.View
	chartView    *chart.View
	historyView  *history.View
	settingsView *settings.View

	currentView messages.ViewType
	err         error

	width, height int
	ready         bool // set by the first WindowSizeMsg
}

var _ tea.Model = (*App)(nil)

// NewApp builds every view up front. Only ports.Chart is required.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s, km := styles.DefaultStyles(), keymap.DefaultKeyMap()
	a := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		help:         help.New(),
		menuView:     menu.NewView(s, km),
		chartView:    chart.NewView(s, km, ports.Chart, ports.History),
		historyView:  history.NewView(s, km, ports.History),
		settingsView: settings.NewView(s, km, ports.Settings),
		currentView:  messages.ViewMenu,
	}
	a.applySettings()
	return a, nil
}

// applySettings pushes display settings into the views.
func (a *App) applySettings() {
	symbols := domain.DefaultAppSettings().Display.Symbols
	if a.ports.Settings != nil {
		if current, err := a.ports.Settings.Get(); err == nil {
			symbols = current.Display.Symbols
		}
	}
	a.chartView.SetSymbols(symbols)

	hint := ""
	if a.ports.History == nil || !a.ports.History.Enabled() {
		hint = "disabled"
	}
	a.menuView.SetHint(messages.ViewHistory, hint)
}

// WithContext bounds service calls made by the views to ctx.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.chartView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tea.SetWindowTitle("astrolabe"))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.HistorySelected:
		a.chartView.Show(msg.Record)
		a.currentView = messages.ViewChart
		return a, nil

	case messages.SettingsSaved:
		if msg.Err == nil {
			a.applySettings()
		}
		return a, a.route(messages.ViewSettings, msg)

	case messages.ChartLoaded, messages.ChartSaved:
		return a, a.route(messages.ViewChart, msg)

	case messages.HistoryLoaded, messages.HistoryDeleted:
		return a, a.route(messages.ViewHistory, msg)

	case messages.SettingsLoaded:
		return a, a.route(messages.ViewSettings, msg)

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Cursor blinks and other ticks belong to the visible view.
	return a, a.route(a.currentView, msg)
}

// switchTo shows view and starts whatever loading it needs.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	switch view {
	case messages.ViewChart:
		return a.chartView.Init()
	case messages.ViewHistory:
		return a.historyView.Init()
	case messages.ViewSettings:
		a.settingsView.Reset()
		return a.settingsView.Init()
	}
	return nil
}

// route delivers msg to one view. The help screen has no model of its own.
func (a *App) route(view messages.ViewType, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch view {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewChart:
		a.chartView, cmd = a.chartView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	}
	return cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		if keymap.Matches(msg.String(), a.keymap.Back) {
			a.currentView = messages.ViewMenu
		}
		return nil
	}

	// The date prompt owns every key while it is open, "?" included.
	typing := a.currentView == messages.ViewChart && a.chartView.Editing()
	if !typing && keymap.Matches(msg.String(), a.keymap.Help) {
		a.currentView = messages.ViewHelp
		return nil
	}

	return a.route(a.currentView, msg)
}

func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewChart:
		return a.chartView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.helpScreen()
	default:
		return a.menuView.View()
	}
}

func (a *App) helpScreen() string {
	sections := []string{
		a.styles.Title.Render("Help"),
		a.help.FullHelpView(a.keymap.FullHelp()),
		a.styles.Muted.Render("Dates are UTC. Signs are tropical, measured from the vernal equinox."),
		a.styles.Help.Render("[esc] back to menu"),
	}
	return strings.Join(sections, "\n\n")
}

// Run takes over the terminal until the user quits or ctx is cancelled.
func (a *App) Run() error {
	_, err := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx)).Run()
	return err
}

// CurrentView reports which view is on screen.
func (a *App) CurrentView() messages.ViewType { return a.currentView }

// Err returns the last error reported through messages.ErrorOccurred.
func (a *App) Err() error { return a.err }

// Ready reports whether the terminal size is known yet.
func (a *App) Ready() bool { return a.ready }

// SetDimensions resizes the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width, a.height = width, height
	a.ready = true
	a.help.Width = width
	a.menuView.SetDimensions(width, height)
	a.chartView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
