package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnose(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		status := New(ctx, "", nil).Diagnose(ctx)
		assert.False(t, status.Configured)
		assert.False(t, status.Reachable)
		assert.NotEmpty(t, status.Error)
	})

	t.Run("healthy", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		status := New(ctx, srv.URL, nil).Diagnose(ctx)
		assert.True(t, status.Configured)
		assert.True(t, status.Reachable)
		assert.Empty(t, status.Error)
	})

	t.Run("server answers with an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		status := New(ctx, srv.URL, nil).Diagnose(ctx)
		assert.True(t, status.Configured)
		assert.False(t, status.Reachable)
		assert.Equal(t, "Server responded with 503: Service Unavailable", status.Error)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		status := New(ctx, url, nil).Diagnose(ctx)
		assert.False(t, status.Reachable)
		assert.Equal(t, MsgUnreachable, status.Error)
	})
}
