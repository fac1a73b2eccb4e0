package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	retroStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// now is replaced in tests.
var now = time.Now

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// useSymbols reports whether glyphs are preferred over names.
func useSymbols() bool {
	if settingsService == nil {
		return domain.DefaultAppSettings().Display.Symbols
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.DefaultAppSettings().Display.Symbols
	}
	return settings.Display.Symbols
}

// printer writes human-readable output, styled when stdout is a terminal.
type printer struct {
	out     io.Writer
	styled  bool
	symbols bool
}

func newPrinter(cmd *cobra.Command) *printer {
	out := cmd.OutOrStdout()
	return &printer{
		out:     out,
		styled:  isTerminal(out),
		symbols: useSymbols(),
	}
}

func (p *printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

func (p *printer) header(format string, args ...any) {
	fmt.Fprintln(p.out, p.render(headerStyle, fmt.Sprintf(format, args...)))
	fmt.Fprintln(p.out)
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *printer) dim(format string, args ...any) {
	fmt.Fprintln(p.out, p.render(dimStyle, fmt.Sprintf(format, args...)))
}

// placement formats one placement as an aligned row.
func (p *printer) placement(pl domain.Placement) string {
	body, sign := pl.Body.String(), pl.Sign.String()
	retro := "(R)"
	if p.symbols {
		body = pl.Body.Symbol() + " " + body
		sign = pl.Sign.Symbol() + " " + sign
		retro = "℞"
	}

	row := fmt.Sprintf("%-10s %7s  %-13s", body, pl.Degrees, sign)
	if pl.Retrograde {
		row += " " + p.render(retroStyle, retro)
	}
	return strings.TrimRight(row, " ")
}

// markers formats transit step markers.
func (p *printer) markers(step domain.TransitStep) string {
	var marks []string
	if step.Ingress {
		marks = append(marks, "ingress")
	}
	if step.Station {
		marks = append(marks, "station")
	}
	if len(marks) == 0 {
		return ""
	}
	return p.render(markerStyle, strings.Join(marks, ", "))
}

// parseDateArg reads an optional date argument at index i, defaulting to now.
func parseDateArg(args []string, i int) (domain.Date, error) {
	if len(args) <= i {
		return domain.DateFromTime(now()), nil
	}
	date, err := domain.ParseDate(args[i])
	if err != nil {
		return domain.Date{}, err
	}
	if err := date.Validate(); err != nil {
		return domain.Date{}, err
	}
	return date, nil
}
