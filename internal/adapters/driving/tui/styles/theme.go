// Package styles provides the colour palette and lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// Palette is the set of colours the styles are built from.
// Element colours tint sign names so a chart reads at a glance.
type Palette struct {
	Accent    lipgloss.Color
	Highlight lipgloss.Color
	Text      lipgloss.Color
	Dim       lipgloss.Color
	Panel     lipgloss.Color
	Frame     lipgloss.Color

	Good lipgloss.Color
	Warn lipgloss.Color
	Bad  lipgloss.Color

	Elements map[domain.Element]lipgloss.Color
}

// NightSky is the default palette: pale text on a dark background.
func NightSky() *Palette {
	return &Palette{
		Accent:    lipgloss.Color("#B4A7F5"),
		Highlight: lipgloss.Color("#F5D67B"),
		Text:      lipgloss.Color("#E2E4F0"),
		Dim:       lipgloss.Color("#6E7391"),
		Panel:     lipgloss.Color("#15172A"),
		Frame:     lipgloss.Color("#3B3F5C"),
		Good:      lipgloss.Color("#8BD5A0"),
		Warn:      lipgloss.Color("#F2B872"),
		Bad:       lipgloss.Color("#EF7B8E"),
		Elements: map[domain.Element]lipgloss.Color{
			domain.ElementFire:  lipgloss.Color("#F28C63"),
			domain.ElementEarth: lipgloss.Color("#9CC97A"),
			domain.ElementAir:   lipgloss.Color("#8EC5F0"),
			domain.ElementWater: lipgloss.Color("#7C8CF2"),
		},
	}
}

// Styles holds the styles shared by every view.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Retrograde marks bodies whose longitude is decreasing.
	Retrograde lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style

	palette  *Palette
	elements map[domain.Element]lipgloss.Style
}

// NewStyles builds styles from p, or from NightSky when p is nil.
func NewStyles(p *Palette) *Styles {
	if p == nil {
		p = NightSky()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	s := &Styles{
		Title:      fg(p.Accent).Bold(true),
		Subtitle:   fg(p.Highlight).Bold(true),
		Normal:     fg(p.Text),
		Muted:      fg(p.Dim),
		Selected:   fg(p.Panel).Background(p.Highlight).Bold(true),
		Help:       fg(p.Dim).Italic(true),
		Error:      fg(p.Bad),
		Success:    fg(p.Good),
		Warning:    fg(p.Warn),
		Retrograde: fg(p.Bad).Bold(true),
		InputField: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Frame).
			Padding(0, 1),
		StatusBar: fg(p.Dim).Background(p.Panel).Padding(0, 1),
		palette:   p,
		elements:  make(map[domain.Element]lipgloss.Style, len(p.Elements)),
	}
	for element, c := range p.Elements {
		s.elements[element] = fg(c)
	}
	return s
}

// DefaultStyles returns styles built from the NightSky palette.
func DefaultStyles() *Styles {
	return NewStyles(nil)
}

// Palette returns the colours the styles were built from.
func (s *Styles) Palette() *Palette {
	return s.palette
}

// Sign returns the style for a sign name, tinted by its element.
func (s *Styles) Sign(sign domain.Sign) lipgloss.Style {
	if !sign.IsValid() {
		return s.Normal
	}
	if style, ok := s.elements[sign.Element()]; ok {
		return style
	}
	return s.Normal
}
