package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/duynhne/shakplay/internal/core/gateway"
)

// scripted answers endpoints from a table keyed by "METHOD /path".
// Unlisted endpoints answer like an unconfigured gateway.
type scripted struct {
	mu      sync.Mutex
	answers map[string]gateway.Response
	calls   []string
}

func newScripted() *scripted {
	return &scripted{answers: map[string]gateway.Response{}}
}

func (s *scripted) ok(method, path string, v any) *scripted {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	s.answers[method+" "+path] = gateway.Response{Data: data, Status: http.StatusOK}
	return s
}

func (s *scripted) fail(method, path string, resp gateway.Response) *scripted {
	s.answers[method+" "+path] = resp
	return s
}

func (s *scripted) Call(_ context.Context, ep gateway.Endpoint) gateway.Response {
	key := ep.Method + " " + ep.Path
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, key)
	if resp, ok := s.answers[key]; ok {
		return resp
	}
	return gateway.Unconfigured()
}

func (s *scripted) called(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c == key {
			n++
		}
	}
	return n
}

// gated holds every call until release is closed and announces each call
// on entered as it starts.
type gated struct {
	next    gateway.Caller
	entered chan string
	release chan struct{}
}

func newGated(next gateway.Caller) *gated {
	return &gated{next: next, entered: make(chan string, 8), release: make(chan struct{})}
}

func (g *gated) Call(ctx context.Context, ep gateway.Endpoint) gateway.Response {
	g.entered <- ep.Method + " " + ep.Path
	<-g.release
	return g.next.Call(ctx, ep)
}

// tokenBox is an in-memory TokenHolder.
type tokenBox struct {
	mu       sync.Mutex
	token    string
	clearErr error
	cleared  int
}

func (b *tokenBox) Token() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.token
}

func (b *tokenBox) SetToken(_ context.Context, token string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = token
	return nil
}

func (b *tokenBox) ClearToken(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = ""
	b.cleared++
	return b.clearErr
}

func networkDown() gateway.Response {
	return gateway.Response{Error: gateway.MsgUnreachable, Kind: gateway.KindNetwork}
}

func titles(in *Inbox) []string {
	var out []string
	for _, n := range in.Recent() {
		out = append(out, n.Title)
	}
	return out
}
