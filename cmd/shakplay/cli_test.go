package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/shakplay/config"
	"github.com/duynhne/shakplay/internal/app"
	"github.com/duynhne/shakplay/internal/core/repository"
)

// offlineEnv points the CLI at the built-in demo data without delays.
func offlineEnv(t *testing.T) {
	t.Setenv("XANO_WORKSPACE_URL", "")
	t.Setenv("NEXT_PUBLIC_XANO_WORKSPACE_URL", "")
	t.Setenv("FIXTURE_DELAY_SCALE", "0")
	t.Setenv("TOKEN_STORE", config.StoreMemory)
	t.Setenv("LOG_LEVEL", "error")
}

// sharedStore keeps one token store across invocations, like a token file.
func sharedStore() opener {
	store := repository.NewMemoryTokenStore(0)
	return func(ctx context.Context, cfg *config.Config) (*app.App, error) {
		return app.New(ctx, cfg, store)
	}
}

func run(t *testing.T, open opener, args ...string) (string, error) {
	t.Helper()
	root, closeApp := newRootCmd(open)
	defer closeApp()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLoginWhoamiLogout(t *testing.T) {
	offlineEnv(t)
	open := sharedStore()

	_, err := run(t, open, "whoami")
	require.Error(t, err)

	out, err := run(t, open, "login", "--email", "demo@shakplay.com", "--password", "demo123")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as Demo User")

	out, err = run(t, open, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, `"email": "demo@shakplay.com"`)

	out, err = run(t, open, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")

	_, err = run(t, open, "whoami")
	assert.Error(t, err)
}

func TestLogin_BadPassword(t *testing.T) {
	offlineEnv(t)

	_, err := run(t, sharedStore(), "login", "--email", "demo@shakplay.com", "--password", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestLogin_RequiresFlags(t *testing.T) {
	offlineEnv(t)

	_, err := run(t, sharedStore(), "login", "--email", "demo@shakplay.com")
	assert.Error(t, err)
}

func TestStatus(t *testing.T) {
	offlineEnv(t)

	out, err := run(t, sharedStore(), "status")
	require.NoError(t, err)

	var status struct {
		Offline    bool   `json:"offline"`
		Session    string `json:"session"`
		Connection struct {
			Configured bool `json:"configured"`
		} `json:"connection"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.True(t, status.Offline)
	assert.Equal(t, "unauthenticated", status.Session)
	assert.False(t, status.Connection.Configured)
}

func TestClubs(t *testing.T) {
	offlineEnv(t)
	open := sharedStore()

	out, err := run(t, open, "clubs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Elite Tennis Club")

	out, err = run(t, open, "clubs", "courts", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Court 2")

	_, err = run(t, open, "clubs", "show", "one")
	assert.ErrorContains(t, err, `invalid id "one"`)
}

func TestMatches_RequireSession(t *testing.T) {
	offlineEnv(t)
	open := sharedStore()

	_, err := run(t, open, "matches", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shakplay login")

	_, err = run(t, open, "login", "--email", "demo@shakplay.com", "--password", "demo123")
	require.NoError(t, err)

	out, err := run(t, open, "matches", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Elite Tennis Club")
}

func TestInvalidConfig(t *testing.T) {
	offlineEnv(t)

	_, err := run(t, sharedStore(), "--token-store", "floppy", "status")
	assert.ErrorContains(t, err, "invalid configuration")
}
