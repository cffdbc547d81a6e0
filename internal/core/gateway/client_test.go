package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu      sync.Mutex
	token   string
	loadErr error
	saveErr error
}

func (m *memStore) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.loadErr
}

func (m *memStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.token = token
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

func TestConfigured(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    bool
	}{
		{"empty", "", false},
		{"template workspace", "https://your-workspace-id.xano.io/api:v1", false},
		{"sample workspace", "https://x8ki-letl-twmt.n7.xano.io/api:abc", false},
		{"real workspace", "https://abcd-1234.xano.io/api:v1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(context.Background(), tt.baseURL, nil)
			assert.Equal(t, tt.want, c.Configured())
		})
	}
}

func TestRequest_NotConfiguredNeverTouchesNetwork(t *testing.T) {
	ctx := context.Background()
	c := New(ctx, "", nil, WithHTTPClient(&http.Client{
		Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			t.Fatal("transport must not be used")
			return nil, nil
		}),
	}))

	for name, resp := range map[string]Response{
		"get":    c.Get(ctx, "/auth/me"),
		"post":   c.Post(ctx, "/auth/login", map[string]string{"email": "a"}),
		"put":    c.Put(ctx, "/shop/cart/items/1", nil),
		"patch":  c.Patch(ctx, "/users/1", nil),
		"delete": c.Delete(ctx, "/matches/1", nil),
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, resp.Failed())
			assert.Nil(t, resp.Data)
			assert.Equal(t, MsgNotConfigured, resp.Error)
			assert.Equal(t, KindConfig, resp.Kind)
			assert.ErrorIs(t, resp.Err(), ErrNotConfigured)
		})
	}
	assert.False(t, c.HealthCheck(ctx))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestRequest_BearerHeaderFollowsToken(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	ctx := context.Background()
	store := &memStore{}
	c := New(ctx, srv.URL, store)

	require.False(t, c.Get(ctx, "/a").Failed())
	require.NoError(t, c.SetToken(ctx, "tok-1"))
	assert.Equal(t, "tok-1", store.token)
	require.False(t, c.Get(ctx, "/a").Failed())
	require.NoError(t, c.ClearToken(ctx))
	assert.Empty(t, store.token)
	require.False(t, c.Get(ctx, "/a").Failed())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"", "Bearer tok-1", ""}, seen)
}

func TestNew_RestoresStoredToken(t *testing.T) {
	ctx := context.Background()

	c := New(ctx, "https://api.example.com", &memStore{token: "saved"})
	assert.Equal(t, "saved", c.Token())
	assert.True(t, c.HasToken())

	c = New(ctx, "https://api.example.com", &memStore{loadErr: errors.New("disk gone")})
	assert.False(t, c.HasToken())
}

func TestSetToken_KeepsTokenWhenStoreFails(t *testing.T) {
	ctx := context.Background()
	c := New(ctx, "https://api.example.com", &memStore{saveErr: errors.New("read-only")})

	err := c.SetToken(ctx, "tok")
	require.Error(t, err)
	assert.Equal(t, "tok", c.Token())
}

func TestRequest_ContentNegotiation(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{"declared json", "application/json; charset=utf-8", `{"id":1}`, `{"id":1}`},
		{"json-looking text", "text/plain", `[1,2]`, `[1,2]`},
		{"plain text", "text/plain", "pong", `{"message":"pong"}`},
		{"no content type", "", "hello", `{"message":"hello"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				} else {
					w.Header()["Content-Type"] = nil
				}
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			resp := New(context.Background(), srv.URL, nil).Get(context.Background(), "/x")
			require.False(t, resp.Failed(), resp.Error)
			assert.JSONEq(t, tt.want, string(resp.Data))
			assert.Equal(t, http.StatusOK, resp.Status)
		})
	}
}

func TestRequest_ApplicationErrorMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message wins", http.StatusBadRequest, `{"message":"Email taken","error":"dup"}`, "Email taken"},
		{"error field", http.StatusUnauthorized, `{"error":"Invalid credentials"}`, "Invalid credentials"},
		{"plain text body", http.StatusInternalServerError, "boom", "boom"},
		{"empty body", http.StatusBadGateway, "", "HTTP 502: Bad Gateway"},
		{"non-string message", http.StatusNotFound, `{"message":{"code":1}}`, "HTTP 404: Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			resp := New(context.Background(), srv.URL, nil).Post(context.Background(), "/x", nil)
			assert.True(t, resp.Failed())
			assert.Nil(t, resp.Data)
			assert.Equal(t, tt.want, resp.Error)
			assert.Equal(t, tt.status, resp.Status)
			assert.Equal(t, KindApplication, resp.Kind)
			assert.ErrorIs(t, resp.Err(), ErrApplication)
		})
	}
}

func TestRequest_NetworkFailures(t *testing.T) {
	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		resp := New(context.Background(), url, nil).Get(context.Background(), "/x")
		assert.Equal(t, KindNetwork, resp.Kind)
		assert.Equal(t, MsgUnreachable, resp.Error)
		assert.Zero(t, resp.Status)
		assert.ErrorIs(t, resp.Err(), ErrNetwork)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		resp := New(context.Background(), srv.URL, nil, WithTimeout(50*time.Millisecond)).Get(context.Background(), "/slow")
		assert.Equal(t, KindNetwork, resp.Kind)
		assert.Equal(t, MsgTimeout, resp.Error)
	})

	t.Run("canceled", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		resp := New(context.Background(), srv.URL, nil).Get(ctx, "/x")
		assert.Equal(t, KindNetwork, resp.Kind)
		assert.Equal(t, MsgCanceled, resp.Error)
	})
}

func TestClassify_CrossOriginHint(t *testing.T) {
	assert.Equal(t, MsgCrossOrigin, classify(errors.New("blocked by CORS policy")))
	assert.Equal(t, MsgNetwork+": weird", classify(errors.New("weird")))
}

func TestRequest_UnencodableBody(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	resp := New(context.Background(), srv.URL, nil).Post(context.Background(), "/x", map[string]any{"f": func() {}})
	assert.Equal(t, KindRequest, resp.Kind)
	assert.ErrorIs(t, resp.Err(), ErrRequest)
}

func TestRequest_MultipartForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "hi there", r.FormValue("message"))

		f, hdr, err := r.FormFile("attachment_0")
		require.NoError(t, err)
		defer f.Close()
		content, _ := io.ReadAll(f)
		assert.Equal(t, "photo.jpg", hdr.Filename)
		assert.Equal(t, "JPEGDATA", string(content))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]int{"id": 7})
	}))
	defer srv.Close()

	ctx := context.Background()
	c := New(ctx, srv.URL, nil)
	require.NoError(t, c.SetToken(ctx, "tok"))

	form := NewForm().Set("message", "hi there").AddFile("attachment_0", "photo.jpg", []byte("JPEGDATA"))
	resp := c.Post(ctx, "/community/chats/1/messages", form)
	require.False(t, resp.Failed(), resp.Error)
	assert.JSONEq(t, `{"id":7}`, string(resp.Data))
}

func TestCall_AppendsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/matches/my", r.URL.Path)
		assert.Equal(t, "completed", r.URL.Query().Get("status"))
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	ep := Endpoint{Method: http.MethodGet, Path: "/matches/my", Query: map[string][]string{"status": {"completed"}}}
	resp := New(context.Background(), srv.URL+"/", nil).Call(context.Background(), ep)
	require.False(t, resp.Failed(), resp.Error)
}

func TestHealthCheck(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != HealthPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, "ok")
	}))
	defer healthy.Close()

	assert.True(t, New(context.Background(), healthy.URL, nil).HealthCheck(context.Background()))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	assert.False(t, New(context.Background(), down.URL, nil).HealthCheck(context.Background()))
}
