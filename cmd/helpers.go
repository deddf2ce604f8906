package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/draft-cli/internal/engine"
	"github.com/sells-group/draft-cli/internal/schema"
	"github.com/sells-group/draft-cli/internal/store"
)

// loadEngine loads the schema at path (or the configured default when path
// is empty) and builds a validated engine over it.
func loadEngine(path string) (*engine.Engine, error) {
	if path == "" {
		path = cfg.Schema.Path
	}
	doc, err := schema.Load(path)
	if err != nil {
		return nil, err
	}
	return engine.New(doc, engine.WithLocale(cfg.Render.Locale))
}

// initStore opens the render archive backend selected by config.
func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		return store.NewSQLite(cfg.Store.Path)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
