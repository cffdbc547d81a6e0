package gateway

import (
	"context"
	"net/http"
	"net/url"
)

// Endpoint describes one call. It is built fresh for every request.
type Endpoint struct {
	Method string
	Path   string
	Query  url.Values
	// Body is a JSON-serializable value or a *Form. Nil sends no body.
	Body   any
	Header http.Header
}

// Target returns the path with the encoded query appended.
func (e Endpoint) Target() string {
	if len(e.Query) == 0 {
		return e.Path
	}
	return e.Path + "?" + e.Query.Encode()
}

// Caller executes endpoints. It is implemented by the remote Client and by
// the fixture provider used when the workspace is not configured.
type Caller interface {
	Call(ctx context.Context, ep Endpoint) Response
}

// Do executes ep through c and decodes the result into T.
func Do[T any](ctx context.Context, c Caller, ep Endpoint) Result[T] {
	return Decode[T](c.Call(ctx, ep))
}

// Select returns the remote client when it is configured and the fallback
// otherwise. A nil fallback keeps the client, whose calls then short-circuit
// with a configuration error.
func Select(client *Client, fallback Caller) Caller {
	if client.Configured() || fallback == nil {
		return client
	}
	return fallback
}
