package main

import (
	"fmt"
	"log/slog"

	"github.com/abdulachik/pquote/internal/config"
	"github.com/abdulachik/pquote/internal/quotes"
	"github.com/spf13/cobra"
)

func newCheckCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the embedded quote catalog",
		Long: `Check the embedded catalog for missing fields, id ordering, duplicates,
capitalization and malformed origins.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := quotes.Parse(quotes.Embedded())
			if err != nil {
				return fmt.Errorf("parse catalog: %w", err)
			}
			return runCheck(cmd, c)
		},
	}
}

func runCheck(cmd *cobra.Command, c *quotes.Catalog) error {
	out := cmd.OutOrStdout()

	violations := quotes.Lint(c)
	for _, v := range violations {
		slog.Debug("catalog violation", "id", v.ID, "rule", v.Rule)
		fmt.Fprintln(out, v.String())
	}

	if len(violations) > 0 {
		return fmt.Errorf("catalog has %d violations", len(violations))
	}

	fmt.Fprintf(out, "Catalog OK: %d quotes\n", c.Size())
	return nil
}
