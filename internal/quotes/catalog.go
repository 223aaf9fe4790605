package quotes

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed data/quotes.yaml
var catalogData []byte

// Origin kinds as written in the data file.
const (
	kindAZQuotesQuote    = "azquotes-quote"
	kindAZQuotesAuthor   = "azquotes-author"
	kindGoodReads        = "goodreads"
	kindJournalDev       = "journaldev"
	kindVimStartify      = "vimstartify"
	kindStormConsultancy = "stormconsultancy"
)

var (
	// ErrEmptyCatalog is returned when a catalog would hold no quotes.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrIndexOutOfRange is the sentinel behind IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError reports a storage position outside the catalog.
type IndexError struct {
	Pos  int
	Size int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("position %d outside catalog of %d quotes", e.Pos, e.Size)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// Catalog is an immutable, ordered collection of quotes. Position 0 holds the
// newest quote, which carries the highest id.
type Catalog struct {
	quotes []Quote
}

// New builds a catalog from quotes in storage order. The slice is copied.
func New(qs []Quote) (*Catalog, error) {
	if len(qs) == 0 {
		return nil, ErrEmptyCatalog
	}
	cp := make([]Quote, len(qs))
	copy(cp, qs)
	return &Catalog{quotes: cp}, nil
}

// Load returns the embedded catalog. It fails if the data breaks the
// id == size - position rule that id lookup relies on.
func Load() (*Catalog, error) {
	c, err := Parse(catalogData)
	if err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	if err := c.VerifyIDs(); err != nil {
		return nil, err
	}
	return c, nil
}

// Embedded returns the raw catalog data compiled into the binary.
func Embedded() []byte {
	return catalogData
}

type rawOrigin struct {
	Kind string `yaml:"kind"`
	Ref  string `yaml:"ref"`
}

type rawQuote struct {
	ID     int       `yaml:"id"`
	Author string    `yaml:"author"`
	Text   string    `yaml:"text"`
	Origin rawOrigin `yaml:"origin"`
}

// Parse decodes a YAML list of quotes.
func Parse(data []byte) (*Catalog, error) {
	var raw []rawQuote
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode quotes: %w", err)
	}

	qs := make([]Quote, 0, len(raw))
	for _, r := range raw {
		o, err := r.Origin.decode()
		if err != nil {
			return nil, fmt.Errorf("quote %d: %w", r.ID, err)
		}
		qs = append(qs, Quote{
			ID:     r.ID,
			Author: r.Author,
			Text:   r.Text,
			Origin: o,
		})
	}

	return New(qs)
}

func (r rawOrigin) decode() (Origin, error) {
	switch r.Kind {
	case kindAZQuotesQuote:
		n, err := strconv.Atoi(r.Ref)
		if err != nil {
			return nil, fmt.Errorf("invalid %s ref %q: %w", r.Kind, r.Ref, err)
		}
		return AZQuotesQuote{Ref: n}, nil
	case kindAZQuotesAuthor:
		if r.Ref == "" {
			return nil, fmt.Errorf("%s requires a ref", r.Kind)
		}
		return AZQuotesAuthor{Slug: r.Ref}, nil
	case kindGoodReads:
		return GoodReads{}, nil
	case kindJournalDev:
		return JournalDev{}, nil
	case kindVimStartify:
		return VimStartify{}, nil
	case kindStormConsultancy:
		n, err := strconv.Atoi(r.Ref)
		if err != nil {
			return nil, fmt.Errorf("invalid %s ref %q: %w", r.Kind, r.Ref, err)
		}
		return StormConsultancy{Ref: n}, nil
	default:
		return nil, fmt.Errorf("unknown origin kind %q", r.Kind)
	}
}

// Size returns the number of quotes.
func (c *Catalog) Size() int {
	return len(c.quotes)
}

// At returns the quote stored at pos.
func (c *Catalog) At(pos int) (Quote, error) {
	if pos < 0 || pos >= len(c.quotes) {
		return Quote{}, &IndexError{Pos: pos, Size: len(c.quotes)}
	}
	return c.quotes[pos], nil
}

// All returns a copy of every quote in storage order.
func (c *Catalog) All() []Quote {
	cp := make([]Quote, len(c.quotes))
	copy(cp, c.quotes)
	return cp
}

// Filter returns the quotes matching keep, in storage order.
func (c *Catalog) Filter(keep func(Quote) bool) []Quote {
	var out []Quote
	for _, q := range c.quotes {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

// VerifyIDs checks that every quote's id equals Size() minus its position.
func (c *Catalog) VerifyIDs() error {
	n := len(c.quotes)
	for i, q := range c.quotes {
		if q.ID != n-i {
			return fmt.Errorf("quote at position %d has id %d, want %d", i, q.ID, n-i)
		}
	}
	return nil
}
