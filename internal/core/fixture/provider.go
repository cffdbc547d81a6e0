// Package fixture serves a small in-process stand-in for the Xano workspace.
// It is selected when no workspace URL is configured so the app stays usable
// offline with a demo account.
package fixture

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	pkgzerolog "github.com/duynhne/pkg/logger/zerolog"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/gateway"
)

//go:embed fixtures.yaml
var defaultSeed []byte

// Simulated latencies at scale 1.
const (
	AuthDelay    = 1000 * time.Millisecond
	ProfileDelay = 500 * time.Millisecond
)

// MsgInvalidCredentials is returned for any login other than the demo account.
const MsgInvalidCredentials = "Invalid credentials. Try demo@shakplay.com / demo123"

// TokenTTL is the lifetime of issued mock tokens.
const TokenTTL = 24 * time.Hour

type seed struct {
	Demo struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"demo"`
	Profile map[string]any `yaml:"profile"`
	Clubs   []any          `yaml:"clubs"`
	Matches []any          `yaml:"matches"`
	Stats   map[string]any `yaml:"stats"`
}

// Provider implements gateway.Caller over fixture data. It is safe for
// concurrent use.
type Provider struct {
	router     chi.Router
	delayScale float64
	signingKey []byte
	token      func() string

	demoEmail string
	demoHash  []byte

	clubs   []domain.Club
	matches []domain.Match
	stats   domain.UserStats

	mu      sync.Mutex
	profile domain.User

	// accounts holds users created by signup, keyed by id.
	accounts map[int64]domain.User
}

// Option configures a Provider.
type Option func(*Provider)

// WithDelayScale multiplies the simulated latency. Zero disables it.
func WithDelayScale(scale float64) Option {
	return func(p *Provider) { p.delayScale = scale }
}

// WithSigningKey fixes the HS256 key used for mock tokens.
func WithSigningKey(key []byte) Option {
	return func(p *Provider) { p.signingKey = key }
}

// WithTokenSource makes every call carry the bearer token returned by fn,
// the way the remote gateway does.
func WithTokenSource(fn func() string) Option {
	return func(p *Provider) { p.token = fn }
}

// New loads the embedded seed.
func New(opts ...Option) (*Provider, error) {
	return NewFromSeed(defaultSeed, opts...)
}

// NewFromSeed loads fixture data from a YAML document.
func NewFromSeed(raw []byte, opts ...Option) (*Provider, error) {
	var s seed
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse fixture seed: %w", err)
	}

	p := &Provider{
		delayScale: 1,
		signingKey: []byte(uuid.NewString()),
		demoEmail:  s.Demo.Email,
		accounts:   map[int64]domain.User{},
	}
	for _, opt := range opts {
		opt(p)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.Demo.Password), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	p.demoHash = hash

	for name, section := range map[string]struct {
		in  any
		out any
	}{
		"profile": {s.Profile, &p.profile},
		"clubs":   {s.Clubs, &p.clubs},
		"matches": {s.Matches, &p.matches},
		"stats":   {s.Stats, &p.stats},
	} {
		if err := convert(section.in, section.out); err != nil {
			return nil, fmt.Errorf("fixture %s: %w", name, err)
		}
	}

	p.router = p.routes()
	return p, nil
}

// convert re-encodes a generic YAML value into its JSON-tagged domain type.
func convert(in, out any) error {
	if in == nil {
		return nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (p *Provider) routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/auth/login", p.login)
	r.Post("/auth/signup", p.signup)
	r.Get("/auth/me", p.me)
	r.Patch("/users/{id}", p.updateProfile)
	r.Post("/auth/logout", p.logout)

	r.Get("/matches/my", p.myMatches)
	r.Get("/clubs", p.listClubs)
	r.Get("/clubs/{id}", p.getClub)
	r.Get("/clubs/{id}/courts", p.clubCourts)
	r.Get("/stats/user", p.userStats)

	return r
}

// Handles reports whether the provider serves method and path.
func (p *Provider) Handles(method, path string) bool {
	return p.router.Match(chi.NewRouteContext(), method, path)
}

// Call implements gateway.Caller. Routes without fixture data answer like
// an unconfigured gateway.
func (p *Provider) Call(ctx context.Context, ep gateway.Endpoint) gateway.Response {
	logger := pkgzerolog.FromContext(ctx)

	if !p.Handles(ep.Method, ep.Path) {
		logger.Warn().Str("method", ep.Method).Str("path", ep.Path).Msg("Xano not configured - using mock data")
		return gateway.Unconfigured()
	}

	var body bytes.Buffer
	if ep.Body != nil {
		if _, isForm := ep.Body.(*gateway.Form); !isForm {
			if err := json.NewEncoder(&body).Encode(ep.Body); err != nil {
				return gateway.Response{Error: err.Error(), Kind: gateway.KindRequest}
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, ep.Target(), &body)
	if err != nil {
		return gateway.Response{Error: err.Error(), Kind: gateway.KindRequest}
	}
	for k, vs := range ep.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != nil {
		if token := p.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger.Debug().Str("method", ep.Method).Str("path", ep.Path).Msg("Serving fixture")

	rec := newRecorder()
	p.router.ServeHTTP(rec, req)
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	return gateway.Interpret(rec.status, rec.header.Get("Content-Type"), rec.body.Bytes())
}

// pause simulates network latency. A canceled context ends it early.
func (p *Provider) pause(ctx context.Context, d time.Duration) error {
	d = time.Duration(float64(d) * p.delayScale)
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Profile returns a copy of the demo profile.
func (p *Provider) Profile() domain.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.profile
}

// Account returns a copy of a user created by signup.
func (p *Provider) Account(id int64) (domain.User, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	u, ok := p.accounts[id]
	return u, ok
}

// recorder captures a handler's response without a network round trip.
type recorder struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newRecorder() *recorder {
	return &recorder{header: http.Header{}}
}

func (r *recorder) Header() http.Header { return r.header }

func (r *recorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
}

func (r *recorder) Write(b []byte) (int, error) {
	r.WriteHeader(http.StatusOK)
	return r.body.Write(b)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
