// Package gateway is the single chokepoint for calls to the Xano workspace.
//
// Error Handling:
// Gateway calls never return Go errors and never panic. Every outcome is
// folded into a Response envelope whose Kind tells configuration, transport
// and application failures apart:
//
//	resp := client.Get(ctx, "/auth/me")
//	if resp.Failed() {
//	    logger.Warn().Str("error", resp.Error).Msg("profile fetch failed")
//	    return
//	}
//
// Callers that do need an error value use Err, which wraps one of the
// sentinel errors below so errors.Is keeps working:
//
//	if errors.Is(resp.Err(), gateway.ErrNotConfigured) {
//	    // fall back to fixtures
//	}
package gateway

import "errors"

// Sentinel errors matching each ErrorKind.
var (
	// ErrNotConfigured indicates the workspace URL is unset or a placeholder.
	// No network attempt was made.
	ErrNotConfigured = errors.New("gateway not configured")

	// ErrRequest indicates the request could not be built (unencodable body, bad URL).
	ErrRequest = errors.New("invalid request")

	// ErrNetwork indicates the request never produced an HTTP response.
	ErrNetwork = errors.New("network failure")

	// ErrApplication indicates the service answered with a non-2xx status
	// or a body that does not match the expected shape.
	ErrApplication = errors.New("application error")
)

// User-facing messages carried in Response.Error.
const (
	MsgNotConfigured = "Xano workspace URL not configured"
	MsgUnreachable   = "Unable to connect to server. Please check your internet connection."
	MsgCrossOrigin   = "CORS error - please check server configuration"
	MsgNetwork       = "Network error occurred"
	MsgTimeout       = "Request timed out"
	MsgCanceled      = "Request canceled"
)
