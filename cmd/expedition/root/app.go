package root

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/summitworks/expedition/internal/catalog"
	"github.com/summitworks/expedition/internal/config"
	"github.com/summitworks/expedition/internal/sim"
	"github.com/summitworks/expedition/internal/storage"
)

// app bundles the pieces every subcommand needs: config, the catalog, and
// the expedition repo.
type app struct {
	cfg     config.Config
	catalog *catalog.Catalog
	repo    *storage.ExpeditionRepo
	db      *sql.DB
}

func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	path := cfg.DBPath
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}

	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = db.Close() }

	var extra []sim.Mountain
	if cfg.MountainsFile != "" {
		extra, err = catalog.LoadFile(cfg.MountainsFile)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	return &app{
		cfg:     cfg,
		catalog: catalog.New(extra...),
		repo:    storage.NewExpeditionRepo(db),
		db:      db,
	}, cleanup, nil
}

// loadEngine restores the active expedition's engine from storage.
func (a *app) loadEngine(ctx context.Context) (*sim.Engine, error) {
	snap, ok, err := a.repo.LoadActive(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, sim.ErrNoActiveExpedition
	}
	engine, err := sim.Restore(snap)
	if err != nil {
		return nil, fmt.Errorf("restore expedition: %w", err)
	}
	return engine, nil
}

func (a *app) saveEngine(ctx context.Context, engine *sim.Engine) error {
	return a.repo.SaveActive(ctx, engine.Snapshot())
}
