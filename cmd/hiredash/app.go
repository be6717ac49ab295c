package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tmarques/hiredash/internal/api"
	"github.com/tmarques/hiredash/internal/config"
	"github.com/tmarques/hiredash/internal/guard"
	"github.com/tmarques/hiredash/internal/logger"
	"github.com/tmarques/hiredash/internal/observability"
	"github.com/tmarques/hiredash/internal/session"
	"github.com/tmarques/hiredash/internal/types"
)

// app bundles the wired client, session store and printer every command
// needs. The session store is constructed here and passed by reference;
// nothing reads session state ambiently.
type app struct {
	cfg     *config.Config
	client  *api.Client
	store   *session.Store
	printer *observability.Printer
}

// newApp loads configuration and wires the client and session store.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client, err := api.New(api.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Logger:  logger.Get(),
	})
	if err != nil {
		return nil, err
	}

	storage := session.NewFileStorage(cfg.StateDir)
	store := session.NewStore(client, storage, logger.Get())

	return &app{
		cfg:     cfg,
		client:  client,
		store:   store,
		printer: observability.NewPrinter(os.Stdout),
	}, nil
}

// requireView hydrates the session and applies the route guard for a view.
// A denied view returns an error telling the user to sign in; admin-only
// views deny non-admin users the same way.
func (a *app) requireView(ctx context.Context, requiresAdmin bool) (*types.Identity, error) {
	a.store.Hydrate(ctx)
	state, identity := a.store.Snapshot()

	switch guard.Decide(state, identity, requiresAdmin) {
	case guard.RenderChildren:
		return identity, nil
	default:
		return nil, fmt.Errorf("you are not signed in with sufficient access: run 'hiredash login' first")
	}
}
