package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/abdulachik/pquote/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("PQUOTE_COLOR", "never")
	t.Setenv("PQUOTE_WIDTH", "80")
	t.Setenv("PQUOTE_SEED", "")
	t.Setenv("PQUOTE_STATS_DSN", "")
}

func TestRun_ByID(t *testing.T) {
	setTestEnv(t)

	t.Run("newest quote", func(t *testing.T) {
		code, out, errOut := execute(t, "--id", "323")
		assert.Equal(t, 0, code)
		assert.Empty(t, errOut)
		assert.True(t, strings.HasSuffix(out, "\n\n\t- Linus Torvalds\n"), out)
	})

	t.Run("oldest quote verbose", func(t *testing.T) {
		code, out, _ := execute(t, "-v", "-i", "1")
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "ID: 1\n")
		assert.Contains(t, out, "Author: C.A.R. Hoare\n")
		assert.Contains(t, out, "Link: http://quotes.stormconsultancy.co.uk/quotes/1\n")
	})

	t.Run("out of range", func(t *testing.T) {
		for _, id := range []string{"0", "324", "-5"} {
			code, out, errOut := execute(t, "--id", id)
			assert.Equal(t, 1, code, "id %s", id)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "Error: no quote with id "+id+" (valid ids are 1 to 323)")
		}
	})

	t.Run("id wins over all", func(t *testing.T) {
		code, out, _ := execute(t, "--id", "323", "--all")
		assert.Equal(t, 0, code)
		assert.Equal(t, 1, strings.Count(out, "\t- "))
	})
}

func TestRun_ByAuthor(t *testing.T) {
	setTestEnv(t)

	t.Run("all quotes by author", func(t *testing.T) {
		code, out, _ := execute(t, "--author", "Rob Pike", "-A")
		assert.Equal(t, 0, code)
		assert.Equal(t, 3, strings.Count(out, "\t- Rob Pike\n"))
	})

	t.Run("not found exits zero", func(t *testing.T) {
		code, out, errOut := execute(t, "-a", "Nobody")
		assert.Equal(t, 0, code)
		assert.Empty(t, errOut)
		assert.Equal(t, "Sorry no quotes found by Nobody\n", out)
	})
}

func TestRun_ByOrigin(t *testing.T) {
	setTestEnv(t)

	t.Run("every journaldev quote", func(t *testing.T) {
		code, out, _ := execute(t, "--origin", "JournalDev", "--all")
		assert.Equal(t, 0, code)
		assert.Equal(t, 16, strings.Count(out, "\t- "))
	})

	t.Run("verbose links", func(t *testing.T) {
		code, out, _ := execute(t, "-o", "good reads", "-A", "-v")
		assert.Equal(t, 0, code)
		assert.Equal(t, 60, strings.Count(out, "Link: https://www.goodreads.com/quotes/tag/programming\n"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		code, out, _ := execute(t, "-o", "wikipedia")
		assert.Equal(t, 0, code)
		assert.Equal(t, "Sorry no quotes found by wikipedia\n", out)
	})
}

func TestRun_Random(t *testing.T) {
	setTestEnv(t)

	code, out, _ := execute(t)
	assert.Equal(t, 0, code)
	assert.Equal(t, 1, strings.Count(out, "\n\n\t- "))

	t.Run("seeded output repeats", func(t *testing.T) {
		t.Setenv("PQUOTE_SEED", "42")
		_, first, _ := execute(t)
		_, second, _ := execute(t)
		assert.Equal(t, first, second)
	})
}

func TestRun_VersionAndHelp(t *testing.T) {
	setTestEnv(t)

	t.Run("version", func(t *testing.T) {
		code, out, _ := execute(t, "-V")
		assert.Equal(t, 0, code)
		assert.Equal(t, "pquote "+version+"\n", out)
	})

	t.Run("version beats bad id", func(t *testing.T) {
		code, out, _ := execute(t, "--version", "--id", "9999")
		assert.Equal(t, 0, code)
		assert.Equal(t, "pquote "+version+"\n", out)
	})

	t.Run("help", func(t *testing.T) {
		code, out, _ := execute(t, "--help")
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "Usage:")
		assert.Contains(t, out, "--origin")
	})
}

func TestRunQuote_HelpCriteria(t *testing.T) {
	setTestEnv(t)
	cfg := &config.Config{LogLevel: "warn", ColorMode: "never", Width: 80, StatsDSN: ":memory:"}

	t.Run("help flag routes to usage", func(t *testing.T) {
		cmd := newRootCmd(cfg)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.InitDefaultHelpFlag()
		require.NoError(t, cmd.Flags().Set("help", "true"))

		require.NoError(t, runQuote(cmd, cfg, &rootOptions{}))
		assert.Contains(t, out.String(), "Usage:")
		assert.NotContains(t, out.String(), "\t- ")
	})

	t.Run("missing help flag is an error", func(t *testing.T) {
		err := runQuote(&cobra.Command{Use: appName}, cfg, &rootOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read help flag")
	})
}

func TestRun_UsageErrors(t *testing.T) {
	setTestEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--bogus"}},
		{name: "positional argument", args: []string{"extra"}},
		{name: "malformed id", args: []string{"--id", "abc"}},
		{name: "missing value", args: []string{"--author"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := execute(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.True(t, strings.HasPrefix(errOut, "Error: "), errOut)
			assert.Contains(t, errOut, "USAGE:\n    pquote --help\n")
		})
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	setTestEnv(t)
	t.Setenv("PQUOTE_WIDTH", "wide")

	code, _, errOut := execute(t, "-i", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "PQUOTE_WIDTH")
}

func TestRun_Stats(t *testing.T) {
	setTestEnv(t)

	code, out, errOut := execute(t, "stats", "--top", "3")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Total: 323")
	assert.Contains(t, out, "Linus Torvalds")
	assert.Contains(t, out, "vimstartify")
	assert.Contains(t, out, "147")
	assert.Contains(t, out, "journaldev")

	t.Run("negative top", func(t *testing.T) {
		code, _, errOut := execute(t, "stats", "--top", "-1")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "USAGE:")
	})
}

func TestRun_Check(t *testing.T) {
	setTestEnv(t)

	code, out, errOut := execute(t, "check")
	assert.Equal(t, 0, code, errOut)
	assert.Equal(t, "Catalog OK: 323 quotes\n", out)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "INFO", parseLevel("INFO").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "WARN", parseLevel("warn").String())
	assert.Equal(t, "WARN", parseLevel("").String())
}
