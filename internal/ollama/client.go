// Package ollama is the HTTP client for the local Ollama server. The CLI
// side of Ollama (pull/list/serve) is invoked through execx by the
// components that own those operations; this package only speaks to the
// HTTP API.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ThatCatDev/junbi/pkg/api"
)

// BinaryName is the model-runner executable junbi expects on PATH.
const BinaryName = "ollama"

// DefaultEndpoint is where a locally started runner listens.
const DefaultEndpoint = "http://127.0.0.1:11434"

// healthTimeout bounds the readiness probe so status polling stays snappy.
const healthTimeout = 2 * time.Second

// Status is the result of a readiness probe.
type Status int

const (
	StatusNotReady Status = iota
	StatusReady
)

func (s Status) String() string {
	if s == StatusReady {
		return "ready"
	}
	return "not-ready"
}

// Client talks to the Ollama HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// BaseURL returns the endpoint this client probes.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Check probes /api/tags and reports readiness. Connection refused,
// timeouts, and non-2xx responses all map to StatusNotReady; the probe
// never returns an error so callers can poll without exception-driven
// control flow.
func (c *Client) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return StatusNotReady
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return StatusNotReady
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return StatusReady
	}
	return StatusNotReady
}

// Tags returns the models the runner currently has available.
func (c *Client) Tags(ctx context.Context) (*api.TagsResponse, error) {
	var tags api.TagsResponse
	if err := c.getJSON(ctx, "/api/tags", &tags); err != nil {
		return nil, err
	}
	return &tags, nil
}

// Version returns the runner's reported version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	var v api.VersionResponse
	if err := c.getJSON(ctx, "/api/version", &v); err != nil {
		return "", err
	}
	return v.Version, nil
}

// Embed produces an embedding vector for text using the given model.
func (c *Client) Embed(ctx context.Context, model, text string) ([]float32, error) {
	body, err := json.Marshal(api.EmbeddingsRequest{Model: model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("marshal embeddings request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("embeddings returned %d: %s", resp.StatusCode, string(respBody))
	}

	var result api.EmbeddingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode embeddings response: %w", err)
	}

	vec := make([]float32, len(result.Embedding))
	for i, f := range result.Embedding {
		vec[i] = float32(f)
	}
	return vec, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
