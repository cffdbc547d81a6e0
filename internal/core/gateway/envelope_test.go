package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestDecode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		res := Decode[item](Response{Data: json.RawMessage(`{"id":3,"name":"Court A"}`), Status: 200})
		require.False(t, res.Failed())
		require.NotNil(t, res.Data)
		assert.Equal(t, item{ID: 3, Name: "Court A"}, *res.Data)
		assert.NoError(t, res.Err())
	})

	t.Run("failure passes through", func(t *testing.T) {
		res := Decode[item](Response{Error: "nope", Status: 404, Kind: KindApplication})
		assert.True(t, res.Failed())
		assert.Nil(t, res.Data)
		assert.Equal(t, 404, res.Status)
		assert.ErrorIs(t, res.Err(), ErrApplication)
	})

	t.Run("shape mismatch is an application error", func(t *testing.T) {
		res := Decode[item](Response{Data: json.RawMessage(`{"id":"three"}`), Status: 200})
		assert.True(t, res.Failed())
		assert.Nil(t, res.Data)
		assert.Equal(t, KindApplication, res.Kind)
	})
}

func TestInterpret(t *testing.T) {
	ok := Interpret(http.StatusCreated, "application/json", []byte(` {"id":1} `))
	assert.False(t, ok.Failed())
	assert.JSONEq(t, `{"id":1}`, string(ok.Data))
	assert.Equal(t, KindNone, ok.Kind)

	bad := Interpret(http.StatusConflict, "application/json", []byte(`{"message":"Already booked"}`))
	assert.True(t, bad.Failed())
	assert.Nil(t, bad.Data)
	assert.Equal(t, "Already booked", bad.Error)
}

func TestUnconfigured(t *testing.T) {
	resp := Unconfigured()
	assert.Equal(t, KindConfig, resp.Kind)
	assert.Equal(t, MsgNotConfigured, resp.Error)
	assert.Zero(t, resp.Status)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "kind(42)", ErrorKind(42).String())
}

type stubCaller struct{ resp Response }

func (s stubCaller) Call(context.Context, Endpoint) Response { return s.resp }

func TestSelect(t *testing.T) {
	ctx := context.Background()
	fallback := stubCaller{}

	configured := New(ctx, "https://abcd.xano.io/api:v1", nil)
	assert.Same(t, configured, Select(configured, fallback))

	unconfigured := New(ctx, "", nil)
	assert.Equal(t, fallback, Select(unconfigured, fallback))
	assert.Same(t, unconfigured, Select(unconfigured, nil))
}

func TestDo(t *testing.T) {
	c := stubCaller{resp: Response{Data: json.RawMessage(`[{"id":1},{"id":2}]`), Status: 200}}
	res := Do[[]item](context.Background(), c, Endpoint{Method: http.MethodGet, Path: "/x"})
	require.False(t, res.Failed())
	assert.Len(t, *res.Data, 2)
}

func TestEndpointTarget(t *testing.T) {
	assert.Equal(t, "/clubs", Endpoint{Path: "/clubs"}.Target())
	ep := Endpoint{Path: "/clubs/search", Query: map[string][]string{"q": {""}}}
	assert.Equal(t, "/clubs/search?q=", ep.Target())
}
