package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/abdulachik/pquote/internal/config"
	"github.com/abdulachik/pquote/internal/db"
	"github.com/abdulachik/pquote/internal/quotes"
	"github.com/abdulachik/pquote/internal/render"
	"github.com/abdulachik/pquote/internal/selector"
)

// App is the main application container holding all dependencies.
type App struct {
	Config   *config.Config
	Catalog  *quotes.Catalog
	Selector *selector.Selector
	Renderer *render.Renderer
}

// New creates a new application instance with all dependencies wired up.
// out is the writer quotes will be printed to; it drives width and color
// detection.
func New(cfg *config.Config, out io.Writer) (*App, error) {
	catalog, err := quotes.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var src selector.Rand
	if cfg.HasSeed {
		slog.Debug("using seeded random source", "seed", cfg.Seed)
		src = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	sel := selector.New(selector.Config{
		Catalog: catalog,
		Rand:    src,
	})

	return &App{
		Config:   cfg,
		Catalog:  catalog,
		Selector: sel,
		Renderer: NewRenderer(cfg, out),
	}, nil
}

// NewRenderer builds a renderer for out using the configured width and color
// mode.
func NewRenderer(cfg *config.Config, out io.Writer) *render.Renderer {
	width := cfg.Width
	if width == 0 {
		width = render.DetectWidth(out)
	}
	return render.New(render.Config{
		Width: width,
		Color: render.ColorEnabled(cfg.ColorMode, out),
	})
}

// OpenStats opens the stats store and loads the catalog into it.
func (a *App) OpenStats(ctx context.Context) (*db.Store, error) {
	store, err := db.NewStore(ctx, a.Config.StatsDSN)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if err := store.LoadCatalog(ctx, a.Catalog); err != nil {
		store.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return store, nil
}
