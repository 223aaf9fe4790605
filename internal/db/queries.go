package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abdulachik/pquote/internal/quotes"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Queries holds the SQL used by the stats command.
type Queries struct {
	db DBTX
}

// New creates Queries bound to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns Queries bound to tx.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// InsertQuoteParams is a catalog row.
type InsertQuoteParams struct {
	ID       int64
	Position int64
	Author   string
	Text     string
	Family   string
	Link     string
}

const insertQuote = `
INSERT INTO quotes (id, position, author, text, family, link)
VALUES (?, ?, ?, ?, ?, ?)
`

// InsertQuote stores a single quote row.
func (q *Queries) InsertQuote(ctx context.Context, arg InsertQuoteParams) error {
	_, err := q.db.ExecContext(ctx, insertQuote,
		arg.ID,
		arg.Position,
		arg.Author,
		arg.Text,
		arg.Family,
		arg.Link,
	)
	return err
}

// CountQuotes returns the number of stored quotes.
func (q *Queries) CountQuotes(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quotes").Scan(&count)
	return count, err
}

// AuthorCount is a row of CountQuotesByAuthor.
type AuthorCount struct {
	Author string
	Count  int64
}

const countQuotesByAuthor = `
SELECT author, COUNT(*) AS count
FROM quotes
GROUP BY author
ORDER BY count DESC, author ASC
`

// CountQuotesByAuthor returns quote counts per author, most quoted first.
func (q *Queries) CountQuotesByAuthor(ctx context.Context) ([]AuthorCount, error) {
	rows, err := q.db.QueryContext(ctx, countQuotesByAuthor)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []AuthorCount
	for rows.Next() {
		var i AuthorCount
		if err := rows.Scan(&i.Author, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// FamilyCount is a row of CountQuotesByFamily.
type FamilyCount struct {
	Family string
	Count  int64
}

const countQuotesByFamily = `
SELECT family, COUNT(*) AS count
FROM quotes
GROUP BY family
ORDER BY count DESC, family ASC
`

// CountQuotesByFamily returns quote counts per source family.
func (q *Queries) CountQuotesByFamily(ctx context.Context) ([]FamilyCount, error) {
	rows, err := q.db.QueryContext(ctx, countQuotesByFamily)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FamilyCount
	for rows.Next() {
		var i FamilyCount
		if err := rows.Scan(&i.Family, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// LoadCatalog replaces the stored quotes with the catalog contents.
func (s *Store) LoadCatalog(ctx context.Context, c *quotes.Catalog) error {
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM quotes"); err != nil {
		return fmt.Errorf("clear quotes: %w", err)
	}

	qtx := s.WithTx(tx)
	for pos, quote := range c.All() {
		err := qtx.InsertQuote(ctx, InsertQuoteParams{
			ID:       int64(quote.ID),
			Position: int64(pos),
			Author:   quote.Author,
			Text:     quote.Text,
			Family:   string(quotes.FamilyOf(quote.Origin)),
			Link:     quotes.RenderOrigin(quote.Origin),
		})
		if err != nil {
			return fmt.Errorf("insert quote %d: %w", quote.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog: %w", err)
	}
	return nil
}
