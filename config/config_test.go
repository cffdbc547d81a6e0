package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XANO_WORKSPACE_URL", "")
	t.Setenv("NEXT_PUBLIC_XANO_WORKSPACE_URL", "")
	t.Setenv("TOKEN_STORE", "")
	t.Setenv("FIXTURE_DELAY_SCALE", "")

	cfg := Load()
	assert.Empty(t, cfg.Xano.WorkspaceURL)
	assert.Equal(t, StoreFile, cfg.Session.Store)
	assert.NotEmpty(t, cfg.Session.FilePath)
	assert.Equal(t, 1.0, cfg.Fixture.DelayScale)
	assert.Zero(t, cfg.GetXanoTimeoutDuration())
	require.NoError(t, cfg.Validate())
}

func TestLoad_WorkspaceURL(t *testing.T) {
	t.Run("primary variable trimmed", func(t *testing.T) {
		t.Setenv("XANO_WORKSPACE_URL", "https://abcd.xano.io/api:v1/")
		assert.Equal(t, "https://abcd.xano.io/api:v1", Load().Xano.WorkspaceURL)
	})

	t.Run("public variable as fallback", func(t *testing.T) {
		t.Setenv("XANO_WORKSPACE_URL", "")
		t.Setenv("NEXT_PUBLIC_XANO_WORKSPACE_URL", "https://efgh.xano.io/api:v1")
		assert.Equal(t, "https://efgh.xano.io/api:v1", Load().Xano.WorkspaceURL)
	})
}

func TestValidate(t *testing.T) {
	t.Run("collects every problem", func(t *testing.T) {
		t.Setenv("PORT", "http")
		t.Setenv("TOKEN_STORE", StorePostgres)
		t.Setenv("DATABASE_URL", "")
		t.Setenv("XANO_TIMEOUT", "soon")

		err := Load().Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PORT")
		assert.Contains(t, err.Error(), "DATABASE_URL")
		assert.Contains(t, err.Error(), "XANO_TIMEOUT")
	})

	t.Run("unknown store", func(t *testing.T) {
		t.Setenv("TOKEN_STORE", "floppy")
		assert.ErrorContains(t, Load().Validate(), "floppy")
	})

	t.Run("negative delay scale", func(t *testing.T) {
		t.Setenv("FIXTURE_DELAY_SCALE", "-1")
		assert.ErrorContains(t, Load().Validate(), "FIXTURE_DELAY_SCALE")
	})
}

func TestDurations(t *testing.T) {
	t.Setenv("XANO_TIMEOUT", "15s")
	t.Setenv("SHUTDOWN_TIMEOUT", "garbage")

	cfg := Load()
	assert.Equal(t, 15*time.Second, cfg.GetXanoTimeoutDuration())
	assert.Equal(t, 10*time.Second, cfg.GetShutdownTimeoutDuration())
}
