// Package render formats quotes and CLI messages for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/abdulachik/pquote/internal/quotes"
	"github.com/mitchellh/go-wordwrap"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Wrap breaks text on whitespace so lines fit in width columns. Words longer
// than width are left intact. A width of zero or less disables wrapping.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.WrapString(text, uint(width))
}

// FormatPlain formats a quote as its text followed by an indented attribution.
func FormatPlain(q quotes.Quote, width int) string {
	return fmt.Sprintf("%s\n\n\t- %s\n", Wrap(q.Text, width), q.Author)
}

// FormatVerbose formats a quote with its id and source link.
func FormatVerbose(q quotes.Quote, width int) string {
	// "Quote: " takes 7 columns on the first line.
	return fmt.Sprintf("ID: %d\nQuote: %s\nAuthor: %s\nLink: %s\n\n",
		q.ID,
		Wrap(q.Text, width-7),
		q.Author,
		quotes.RenderOrigin(q.Origin),
	)
}

// FormatQuotes formats each quote in order.
func FormatQuotes(qs []quotes.Quote, verbose bool, width int) string {
	var b strings.Builder
	for _, q := range qs {
		if verbose {
			b.WriteString(FormatVerbose(q, width))
		} else {
			b.WriteString(FormatPlain(q, width))
		}
	}
	return b.String()
}
