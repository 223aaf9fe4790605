package main

import (
	"fmt"
	"strconv"

	"github.com/abdulachik/pquote/internal/app"
	"github.com/abdulachik/pquote/internal/config"
	"github.com/spf13/cobra"
)

func newStatsCmd(cfg *config.Config) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Long:  `Load the catalog into SQLite and display quote counts per author and per origin.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, cfg, top)
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 10, "Number of authors to list (0 lists all)")
	return cmd
}

func runStats(cmd *cobra.Command, cfg *config.Config, top int) error {
	ctx := cmd.Context()

	if err := cfg.ValidateForStats(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if top < 0 {
		return &usageError{err: fmt.Errorf("--top must not be negative")}
	}

	out := cmd.OutOrStdout()
	a, err := app.New(cfg, out)
	if err != nil {
		return err
	}

	store, err := a.OpenStats(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	total, err := store.CountQuotes(ctx)
	if err != nil {
		return fmt.Errorf("count quotes: %w", err)
	}

	authors, err := store.CountQuotesByAuthor(ctx)
	if err != nil {
		return fmt.Errorf("count quotes by author: %w", err)
	}

	families, err := store.CountQuotesByFamily(ctx)
	if err != nil {
		return fmt.Errorf("count quotes by origin: %w", err)
	}

	fmt.Fprint(out, a.Renderer.Heading("Quotes"))
	fmt.Fprintf(out, "  Total: %d\n", total)
	fmt.Fprintf(out, "  Authors: %d\n\n", len(authors))

	if top > 0 && len(authors) > top {
		authors = authors[:top]
	}
	authorRows := make([][]string, 0, len(authors))
	for _, row := range authors {
		authorRows = append(authorRows, []string{row.Author, strconv.FormatInt(row.Count, 10)})
	}
	fmt.Fprint(out, a.Renderer.Heading("By author"))
	fmt.Fprint(out, a.Renderer.Table([]string{"Author", "Quotes"}, authorRows))
	fmt.Fprintln(out)

	familyRows := make([][]string, 0, len(families))
	for _, row := range families {
		familyRows = append(familyRows, []string{row.Family, strconv.FormatInt(row.Count, 10)})
	}
	fmt.Fprint(out, a.Renderer.Heading("By origin"))
	fmt.Fprint(out, a.Renderer.Table([]string{"Origin", "Quotes"}, familyRows))

	return nil
}
