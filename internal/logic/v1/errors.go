// Package v1 holds the client-side business logic for API version 1: the
// session state holder and the match and club services built on the
// typed endpoints.
//
// Error Handling:
// Request outcomes arrive as gateway result envelopes. When a service turns a
// failed envelope into a Go error it wraps the envelope error, so both the
// gateway sentinels and the sentinels below can be matched with errors.Is.
//
// Example Usage:
//
//	res := s.auth.Profile(ctx)
//	if res.Failed() {
//	    return fmt.Errorf("restore session: %w", res.Err())
//	}
//
//	if user == nil {
//	    return fmt.Errorf("update profile: %w", ErrNotAuthenticated)
//	}
//
// Error Checking (in handlers):
//
//	switch {
//	case errors.Is(err, logicv1.ErrNotAuthenticated):
//	    c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
//	case errors.Is(err, gateway.ErrNetwork):
//	    c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
//	default:
//	    c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
//	}
package v1

import "errors"

// Sentinel errors for session and domain operations.
// These errors should be wrapped with context using fmt.Errorf("%w") when returned.
var (
	// ErrNotAuthenticated indicates the operation needs a signed-in user.
	// HTTP Status: 401 Unauthorized
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionExpired indicates the stored token expired before it was used.
	// HTTP Status: 401 Unauthorized
	ErrSessionExpired = errors.New("session expired")

	// ErrNoActiveMatch indicates no match is currently being recorded.
	// HTTP Status: 409 Conflict
	ErrNoActiveMatch = errors.New("no active match")
)
