package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/abdulachik/pquote/internal/quotes"
)

// Color modes accepted by ColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds renderer configuration.
type Config struct {
	// Width wraps quote text at this many columns. Zero disables wrapping.
	Width int

	// Color enables ANSI styling of labels and messages.
	Color bool
}

// Renderer turns selections and errors into terminal text.
type Renderer struct {
	width int

	errorStyle   lipgloss.Style
	usageStyle   lipgloss.Style
	commandStyle lipgloss.Style
	headingStyle lipgloss.Style
}

// New creates a new Renderer.
func New(cfg Config) *Renderer {
	lr := lipgloss.NewRenderer(io.Discard)
	if cfg.Color {
		lr.SetColorProfile(termenv.ANSI)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		width:        cfg.Width,
		errorStyle:   lr.NewStyle().Foreground(lipgloss.Color("1")),
		usageStyle:   lr.NewStyle().Foreground(lipgloss.Color("3")),
		commandStyle: lr.NewStyle().Foreground(lipgloss.Color("2")),
		headingStyle: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	}
}

// Quotes formats a selection.
func (r *Renderer) Quotes(qs []quotes.Quote, verbose bool) string {
	return FormatQuotes(qs, verbose, r.width)
}

// NotFound is the message shown when a filter matched nothing.
func (r *Renderer) NotFound(query string) string {
	return fmt.Sprintf("Sorry no quotes found by %s\n", query)
}

// Version formats the version line.
func (r *Renderer) Version(name, version string) string {
	return fmt.Sprintf("%s %s\n", r.commandStyle.Render(name), version)
}

// Error formats a runtime failure.
func (r *Renderer) Error(err error) string {
	return fmt.Sprintf("%s %v\n", r.errorStyle.Render("Error:"), err)
}

// UsageError formats a command line parsing failure with a pointer to help.
func (r *Renderer) UsageError(name string, err error) string {
	return fmt.Sprintf("%s %v\n%s\n    %s %s\n",
		r.errorStyle.Render("Error:"),
		err,
		r.usageStyle.Render("USAGE:"),
		name,
		r.commandStyle.Render("--help"),
	)
}

// Heading formats a section title.
func (r *Renderer) Heading(text string) string {
	return r.headingStyle.Render(text) + "\n"
}

// Table draws rows under headers with box borders.
func (r *Renderer) Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	return t.String() + "\n"
}

// ColorEnabled resolves a color mode for the given writer. Auto enables color
// only for terminals and honours a non-empty NO_COLOR.
func ColorEnabled(mode string, w io.Writer) bool {
	return colorFor(mode, isTerminal(w))
}

func colorFor(mode string, tty bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return tty
	}
}

// DetectWidth returns the terminal width of w, or DefaultWidth when w is not a
// terminal.
func DetectWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !isTerminal(w) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
