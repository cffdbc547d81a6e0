package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// ConnectionStatus summarises whether the workspace can be used.
type ConnectionStatus struct {
	Configured bool   `json:"configured"`
	Reachable  bool   `json:"reachable"`
	BaseURL    string `json:"base_url,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Diagnose probes the workspace. When the health endpoint fails it issues a
// plain GET on the base URL to report what the server answered.
func (c *Client) Diagnose(ctx context.Context) ConnectionStatus {
	status := ConnectionStatus{BaseURL: c.baseURL}

	if !c.Configured() {
		status.Error = "Xano workspace URL not configured or invalid"
		return status
	}
	status.Configured = true

	if c.HealthCheck(ctx) {
		status.Reachable = true
		return status
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		status.Error = classify(err)
		return status
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	status.Error = fmt.Sprintf("Server responded with %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	return status
}
