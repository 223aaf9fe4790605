package selector

import (
	"strings"

	"github.com/abdulachik/pquote/internal/quotes"
)

// familyAliases maps normalized origin names to source families. Keys are
// lowercase with spaces, hyphens and underscores removed.
var familyAliases = map[string]quotes.Family{
	"azquotes":         quotes.FamilyAZQuotes,
	"azquote":          quotes.FamilyAZQuotes,
	"goodreads":        quotes.FamilyGoodReads,
	"goodread":         quotes.FamilyGoodReads,
	"journaldev":       quotes.FamilyJournalDev,
	"vimstartify":      quotes.FamilyVimStartify,
	"startify":         quotes.FamilyVimStartify,
	"stormconsultancy": quotes.FamilyStormConsultancy,
}

// ParseFamily resolves a user supplied origin name such as "Good Reads" or
// "AZQuotes" to a source family. Matching ignores case, spaces, hyphens and
// underscores.
func ParseFamily(s string) (quotes.Family, bool) {
	f, ok := familyAliases[normalizeAlias(s)]
	return f, ok
}

func normalizeAlias(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
