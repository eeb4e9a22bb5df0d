package cmd

import (
	"context"

	"github.com/vibescout/vibescout/internal/config"
	"github.com/vibescout/vibescout/internal/core"
	"github.com/vibescout/vibescout/internal/core/engine"
	"github.com/vibescout/vibescout/internal/core/generate"
	"github.com/vibescout/vibescout/internal/core/store"
)

// discoveryDeps bundles the wired discovery flow for CLI commands. The
// store-backed hand-off slot is what carries results from the discover
// command to the results command across process boundaries.
type discoveryDeps struct {
	store    *store.Store
	cfg      *config.Config
	orch     *engine.Orchestrator
	resolver *engine.Resolver
}

func buildDiscovery(ctx context.Context) (*discoveryDeps, error) {
	db, cfg, err := openStore(ctx)
	if err != nil {
		return nil, err
	}

	client := generate.NewClient(cfg.Discovery.ServiceURL)
	client.Timeout = cfg.Discovery.RequestTimeout

	slot := &store.HandoffSlot{Store: db}

	orch := &engine.Orchestrator{
		Client:     client,
		Slot:       slot,
		Cache:      db,
		CacheTTL:   cfg.Discovery.CacheTTL,
		MinDisplay: cfg.Discovery.MinDisplay,
		MaxTimeout: cfg.Discovery.MaxTimeout,
	}

	resolver := &engine.Resolver{
		Slot:         slot,
		Orchestrator: orch,
	}

	return &discoveryDeps{
		store:    db,
		cfg:      cfg,
		orch:     orch,
		resolver: resolver,
	}, nil
}

func (d *discoveryDeps) Close() {
	if d != nil && d.store != nil {
		_ = d.store.Close()
	}
}

// profileFor loads the named stored profile. Missing profiles resolve to the
// zero profile, which downstream renders as the empty state instead of
// synthesizing events.
func (d *discoveryDeps) profileFor(ctx context.Context, name string) (core.Profile, error) {
	record, err := d.store.GetProfile(ctx, name)
	if err != nil {
		return core.Profile{}, err
	}
	if record == nil {
		return core.Profile{}, nil
	}
	return record.Profile, nil
}
