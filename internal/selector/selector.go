// Package selector resolves lookup criteria to quotes from a catalog.
package selector

import (
	"log/slog"
	"math/rand/v2"

	"github.com/abdulachik/pquote/internal/quotes"
)

// Rand is the source used to break ties between candidates.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Criteria holds parsed lookup flags. At most one of ID, Author and Origin is
// honoured, in that order.
type Criteria struct {
	Help    bool
	Version bool
	Verbose bool
	All     bool
	ID      *int
	Author  *string
	Origin  *string
}

// Kind describes what a Result carries.
type Kind int

const (
	// KindQuotes means Result.Quotes holds the selection.
	KindQuotes Kind = iota
	// KindNotFound means an author or origin filter matched nothing.
	KindNotFound
	// KindHelp means help output was requested.
	KindHelp
	// KindVersion means version output was requested.
	KindVersion
)

func (k Kind) String() string {
	switch k {
	case KindQuotes:
		return "quotes"
	case KindNotFound:
		return "not_found"
	case KindHelp:
		return "help"
	case KindVersion:
		return "version"
	default:
		return "unknown"
	}
}

// Result is the outcome of a selection.
type Result struct {
	Kind   Kind
	Quotes []quotes.Quote
	// Query is the filter text that matched nothing, set for KindNotFound.
	Query string
}

// Selector picks quotes from a catalog.
type Selector struct {
	catalog *quotes.Catalog
	rand    Rand
}

// Config holds configuration for the selector.
type Config struct {
	Catalog *quotes.Catalog
	Rand    Rand // Optional: defaults to the auto-seeded math/rand/v2 source
}

// New creates a new Selector.
func New(cfg Config) *Selector {
	r := cfg.Rand
	if r == nil {
		r = globalRand{}
	}
	return &Selector{
		catalog: cfg.Catalog,
		rand:    r,
	}
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Select applies criteria in precedence order: help, version, id, author,
// origin, then a random pick. With All set, author, origin and the unfiltered
// path return every candidate in catalog order; an id always yields one quote.
func (s *Selector) Select(c Criteria) (Result, error) {
	switch {
	case c.Help:
		return Result{Kind: KindHelp}, nil
	case c.Version:
		return Result{Kind: KindVersion}, nil
	case c.ID != nil:
		q, err := s.ByID(*c.ID)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindQuotes, Quotes: []quotes.Quote{q}}, nil
	case c.Author != nil:
		return s.resolve(*c.Author, s.ByAuthor(*c.Author), c.All), nil
	case c.Origin != nil:
		return s.resolve(*c.Origin, s.ByOrigin(*c.Origin), c.All), nil
	default:
		if c.All {
			return Result{Kind: KindQuotes, Quotes: s.catalog.All()}, nil
		}
		pos := s.rand.IntN(s.catalog.Size())
		q, err := s.catalog.At(pos)
		if err != nil {
			return Result{}, err
		}
		slog.Debug("picked random quote", "position", pos, "id", q.ID)
		return Result{Kind: KindQuotes, Quotes: []quotes.Quote{q}}, nil
	}
}

// ByID returns the quote with the given id. Ids count down from the catalog
// size at position 0, so the quote lives at position size - id.
func (s *Selector) ByID(id int) (quotes.Quote, error) {
	n := s.catalog.Size()
	if id < 1 || id > n {
		return quotes.Quote{}, &IDRangeError{ID: id, Max: n}
	}
	return s.catalog.At(n - id)
}

// ByAuthor returns every quote whose author equals name exactly.
func (s *Selector) ByAuthor(name string) []quotes.Quote {
	return s.catalog.Filter(func(q quotes.Quote) bool {
		return q.Author == name
	})
}

// ByOrigin returns every quote from the source family named by alias.
// Unknown aliases match nothing.
func (s *Selector) ByOrigin(alias string) []quotes.Quote {
	family, ok := ParseFamily(alias)
	if !ok {
		slog.Debug("unknown origin alias", "origin", alias)
		return nil
	}
	return s.ByFamily(family)
}

// ByFamily returns every quote belonging to family.
func (s *Selector) ByFamily(family quotes.Family) []quotes.Quote {
	return s.catalog.Filter(func(q quotes.Quote) bool {
		return quotes.FamilyOf(q.Origin) == family
	})
}

func (s *Selector) resolve(query string, candidates []quotes.Quote, all bool) Result {
	switch {
	case len(candidates) == 0:
		return Result{Kind: KindNotFound, Query: query}
	case all:
		return Result{Kind: KindQuotes, Quotes: candidates}
	case len(candidates) == 1:
		return Result{Kind: KindQuotes, Quotes: candidates}
	default:
		i := s.rand.IntN(len(candidates))
		slog.Debug("picked among candidates", "query", query, "candidates", len(candidates), "index", i)
		return Result{Kind: KindQuotes, Quotes: candidates[i : i+1]}
	}
}
