package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/abdulachik/pquote/internal/app"
	"github.com/abdulachik/pquote/internal/config"
	"github.com/abdulachik/pquote/internal/selector"
	"github.com/spf13/cobra"
)

const appName = "pquote"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

// usageError marks command line mistakes so they are reported with a pointer
// to --help.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type rootOptions struct {
	version bool
	verbose bool
	all     bool
	id      int
	author  string
	origin  string
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Programmer Quote Generator",
		Long: `pquote prints a programming quote. Without flags it picks one at random.

Quotes can be chosen by id, by exact author name, or by origin:
  azquotes, goodreads, journaldev, vimstartify, stormconsultancy

Examples:
  pquote                          # Random quote
  pquote --id 42                  # Quote number 42
  pquote --author "Rob Pike"      # Random quote by Rob Pike
  pquote --origin "Good Reads" -A # Every quote collected from goodreads`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, cfg, opts)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.BoolVarP(&opts.version, "version", "V", false, "Prints version information")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Prints quote verbosely")
	flags.BoolVarP(&opts.all, "all", "A", false, "Print all quotes")
	flags.IntVarP(&opts.id, "id", "i", 0, "Choose quote by id")
	flags.StringVarP(&opts.author, "author", "a", "", "Choose quote by author")
	flags.StringVarP(&opts.origin, "origin", "o", "", "Choose quote by origin (azquotes,goodreads,journaldev,vimstartify,stormconsultancy)")

	cmd.AddCommand(newStatsCmd(cfg))
	cmd.AddCommand(newCheckCmd(cfg))

	return cmd
}

func runQuote(cmd *cobra.Command, cfg *config.Config, opts *rootOptions) error {
	flags := cmd.Flags()

	crit := selector.Criteria{
		Version: opts.version,
		Verbose: opts.verbose,
		All:     opts.all,
	}
	// cobra answers --help itself before RunE, so this only matters when
	// runQuote is driven directly.
	help, err := flags.GetBool("help")
	if err != nil {
		return fmt.Errorf("read help flag: %w", err)
	}
	crit.Help = help
	if flags.Changed("id") {
		crit.ID = &opts.id
	}
	if flags.Changed("author") {
		crit.Author = &opts.author
	}
	if flags.Changed("origin") {
		crit.Origin = &opts.origin
	}

	out := cmd.OutOrStdout()
	a, err := app.New(cfg, out)
	if err != nil {
		return err
	}

	res, err := a.Selector.Select(crit)
	if err != nil {
		return err
	}

	slog.Debug("selection resolved", "kind", res.Kind, "quotes", len(res.Quotes))

	switch res.Kind {
	case selector.KindHelp:
		return cmd.Help()
	case selector.KindVersion:
		fmt.Fprint(out, a.Renderer.Version(appName, version))
	case selector.KindNotFound:
		fmt.Fprint(out, a.Renderer.NotFound(res.Query))
	default:
		fmt.Fprint(out, a.Renderer.Quotes(res.Quotes, crit.Verbose))
	}
	return nil
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	setupLogging(cfg.LogLevel, stderr)

	cmd := newRootCmd(cfg)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		r := app.NewRenderer(cfg, stderr)
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprint(stderr, r.UsageError(appName, uerr.err))
		} else {
			fmt.Fprint(stderr, r.Error(err))
		}
		return 1
	}
	return 0
}

func setupLogging(level string, w io.Writer) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
