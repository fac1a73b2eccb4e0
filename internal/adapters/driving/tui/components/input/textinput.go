// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/astrolabe/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// DateInput wraps a bubbles textinput for entering chart dates.
type DateInput struct {
	textinput textinput.Model
	styles    *styles.Styles
}

// NewDateInput creates a new date input component.
func NewDateInput(s *styles.Styles) *DateInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD or YYYY-MM-DDTHH:MM"
	ti.CharLimit = 32
	ti.Width = 32

	return &DateInput{
		textinput: ti,
		styles:    s,
	}
}

// Update handles input messages.
func (d *DateInput) Update(msg tea.Msg) (*DateInput, tea.Cmd) {
	var cmd tea.Cmd
	d.textinput, cmd = d.textinput.Update(msg)
	return d, cmd
}

// View renders the date input.
func (d *DateInput) View() string {
	label := d.styles.Title.Render("Date (UTC): ")
	field := d.styles.InputField.Render(d.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (d *DateInput) Value() string {
	return d.textinput.Value()
}

// SetValue sets the input value.
func (d *DateInput) SetValue(value string) {
	d.textinput.SetValue(value)
}

// Date parses and validates the entered date.
func (d *DateInput) Date() (domain.Date, error) {
	date, err := domain.ParseDate(d.textinput.Value())
	if err != nil {
		return domain.Date{}, err
	}
	if err := date.Validate(); err != nil {
		return domain.Date{}, err
	}
	return date, nil
}

// Focus sets focus on the input.
func (d *DateInput) Focus() tea.Cmd {
	return d.textinput.Focus()
}

// Blur removes focus from the input.
func (d *DateInput) Blur() {
	d.textinput.Blur()
}

// Focused returns whether the input is focused.
func (d *DateInput) Focused() bool {
	return d.textinput.Focused()
}

// Reset clears the input.
func (d *DateInput) Reset() {
	d.textinput.Reset()
}
