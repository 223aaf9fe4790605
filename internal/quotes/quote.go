// Package quotes holds the embedded catalog of programming quotes.
package quotes

import "fmt"

// Family names the site a quote was collected from.
type Family string

const (
	FamilyUnknown          Family = ""
	FamilyAZQuotes         Family = "azquotes"
	FamilyGoodReads        Family = "goodreads"
	FamilyJournalDev       Family = "journaldev"
	FamilyVimStartify      Family = "vimstartify"
	FamilyStormConsultancy Family = "stormconsultancy"
)

// Families returns every known source family in display order.
func Families() []Family {
	return []Family{
		FamilyAZQuotes,
		FamilyGoodReads,
		FamilyJournalDev,
		FamilyVimStartify,
		FamilyStormConsultancy,
	}
}

func (f Family) String() string {
	if f == FamilyUnknown {
		return "unknown"
	}
	return string(f)
}

// Quote is a single catalog record.
type Quote struct {
	ID     int    `validate:"gt=0"`
	Author string `validate:"required"`
	Text   string `validate:"required"`
	Origin Origin `validate:"required"`
}

// Origin identifies where a quote was found. The set of implementations is
// closed: only the types in this file satisfy it.
type Origin interface {
	origin()
}

// AZQuotesQuote points at a single quote page on azquotes.com.
type AZQuotesQuote struct {
	Ref int
}

// AZQuotesAuthor points at an author page on azquotes.com.
type AZQuotesAuthor struct {
	Slug string
}

// GoodReads is the goodreads programming tag page.
type GoodReads struct{}

// JournalDev is the journaldev favourite quotes article.
type JournalDev struct{}

// VimStartify is the fortune list shipped with vim-startify.
type VimStartify struct{}

// StormConsultancy points at a quote on quotes.stormconsultancy.co.uk.
type StormConsultancy struct {
	Ref int
}

func (AZQuotesQuote) origin()    {}
func (AZQuotesAuthor) origin()   {}
func (GoodReads) origin()        {}
func (JournalDev) origin()       {}
func (VimStartify) origin()      {}
func (StormConsultancy) origin() {}

// FamilyOf classifies an origin. Both azquotes variants belong to FamilyAZQuotes.
// A nil origin is FamilyUnknown.
func FamilyOf(o Origin) Family {
	switch o.(type) {
	case AZQuotesQuote, AZQuotesAuthor:
		return FamilyAZQuotes
	case GoodReads:
		return FamilyGoodReads
	case JournalDev:
		return FamilyJournalDev
	case VimStartify:
		return FamilyVimStartify
	case StormConsultancy:
		return FamilyStormConsultancy
	default:
		return FamilyUnknown
	}
}

// RenderOrigin returns the link for an origin.
func RenderOrigin(o Origin) string {
	switch v := o.(type) {
	case AZQuotesQuote:
		return fmt.Sprintf("https://www.azquotes.com/quote/%d", v.Ref)
	case AZQuotesAuthor:
		return fmt.Sprintf("https://www.azquotes.com/author/%s", v.Slug)
	case GoodReads:
		return "https://www.goodreads.com/quotes/tag/programming"
	case JournalDev:
		return "https://www.journaldev.com/240/my-25-favorite-programming-quotes-that-are-funny-too"
	case VimStartify:
		return "https://github.com/mhinz/vim-startify/blob/master/autoload/startify/fortune.vim"
	case StormConsultancy:
		return fmt.Sprintf("http://quotes.stormconsultancy.co.uk/quotes/%d", v.Ref)
	default:
		return ""
	}
}
