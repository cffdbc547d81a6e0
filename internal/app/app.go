// Package app wires one client session from configuration. Both the HTTP
// shell and the CLI build on it.
package app

import (
	"context"
	"fmt"
	"sync"

	pkgzerolog "github.com/duynhne/pkg/logger/zerolog"

	"github.com/duynhne/shakplay/config"
	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/endpoint"
	"github.com/duynhne/shakplay/internal/core/fixture"
	"github.com/duynhne/shakplay/internal/core/gateway"
	"github.com/duynhne/shakplay/internal/core/repository"
	logicv1 "github.com/duynhne/shakplay/internal/logic/v1"
)

// App holds the wired client.
type App struct {
	Client  *gateway.Client
	Caller  gateway.Caller
	API     *endpoint.API
	Session *logicv1.SessionService
	Matches *logicv1.MatchService
	Clubs   *logicv1.ClubService
	Inbox   *logicv1.Inbox
	// Offline is true when calls are served by fixture data.
	Offline bool

	closeOnce  sync.Once
	closeStore func()
}

// New builds an App around store. When the workspace URL is not usable the
// fixture provider answers instead of the network.
func New(ctx context.Context, cfg *config.Config, store domain.TokenStore) (*App, error) {
	logger := pkgzerolog.FromContext(ctx)

	client := gateway.New(ctx, cfg.Xano.WorkspaceURL, store,
		gateway.WithTimeout(cfg.GetXanoTimeoutDuration()),
	)

	var fallback gateway.Caller
	if !client.Configured() {
		provider, err := fixture.New(
			fixture.WithDelayScale(cfg.Fixture.DelayScale),
			fixture.WithTokenSource(client.Token),
		)
		if err != nil {
			return nil, fmt.Errorf("load fixtures: %w", err)
		}
		fallback = provider
		logger.Warn().Msg("Using mock data - configure XANO_WORKSPACE_URL for the real API")
	}
	caller := gateway.Select(client, fallback)

	inbox := logicv1.NewInbox(logicv1.LogNotifier{}, 50)
	api := endpoint.New(caller)

	return &App{
		Client:     client,
		Caller:     caller,
		API:        api,
		Session:    logicv1.NewSessionService(client, api.Auth, inbox),
		Matches:    logicv1.NewMatchService(api.Matches, inbox),
		Clubs:      logicv1.NewClubService(api.Clubs, inbox),
		Inbox:      inbox,
		Offline:    fallback != nil,
		closeStore: func() {},
	}, nil
}

// Open builds the token store selected by cfg and an App around it.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	store, closeStore, err := repository.NewTokenStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}
	a, err := New(ctx, cfg, store)
	if err != nil {
		closeStore()
		return nil, err
	}
	a.closeStore = closeStore
	return a, nil
}

// Close releases the token store. It is safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(a.closeStore)
}
