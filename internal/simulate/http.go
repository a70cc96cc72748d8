package simulate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PatiFroNati/shot-plot-app/internal/domain/types"
)

// client wraps http.Client with the service base URL.
type client struct {
	http    *http.Client
	baseURL string
}

func newClient(baseURL string, timeout time.Duration) *client {
	return &client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

func (c *client) postJSON(path string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("post %s: status %d: %s", path, resp.StatusCode, string(b))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// openSession creates a session bound to the target.
func (c *client) openSession(target string) (types.SessionState, error) {
	var state types.SessionState
	err := c.postJSON("/sessions", map[string]string{"target": target}, &state)
	return state, err
}

// fireShot posts one click and returns the scored shot.
func (c *client) fireShot(sessionID string, cl click) (types.Shot, error) {
	var shot types.Shot
	err := c.postJSON("/sessions/"+sessionID+"/shots", cl, &shot)
	return shot, err
}

// listTargets fetches the catalog summaries.
func (c *client) listTargets() ([]types.TargetSummary, error) {
	resp, err := c.http.Get(c.baseURL + "/targets")
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list targets: status %d", resp.StatusCode)
	}
	var out []types.TargetSummary
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode targets: %w", err)
	}
	return out, nil
}

// checkHealth verifies the service is reachable.
func (c *client) checkHealth() error {
	resp, err := c.http.Get(c.baseURL + "/healthz")
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: status %d", resp.StatusCode)
	}
	return nil
}
