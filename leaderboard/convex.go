package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrRemote is returned when the Convex deployment rejects a call
var ErrRemote = errors.New("convex call failed")

// ConvexClient provides access to a Convex deployment via its HTTP API
type ConvexClient struct {
	baseURL    string
	httpClient *http.Client
}

// convexRequest represents the request body for Convex HTTP API
type convexRequest struct {
	Path   string         `json:"path"`
	Args   map[string]any `json:"args"`
	Format string         `json:"format"`
}

// convexResponse represents the response from Convex HTTP API
type convexResponse struct {
	Status string          `json:"status"`
	Value  json.RawMessage `json:"value"`
	Error  *string         `json:"errorMessage,omitempty"`
}

// NewConvexClient creates a new Convex HTTP client
func NewConvexClient(deploymentURL string) *ConvexClient {
	return &ConvexClient{
		baseURL: deploymentURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Query executes a Convex query function
func (c *ConvexClient) Query(ctx context.Context, functionPath string, args map[string]any) (json.RawMessage, error) {
	return c.call(ctx, "query", functionPath, args)
}

// Mutation executes a Convex mutation function
func (c *ConvexClient) Mutation(ctx context.Context, functionPath string, args map[string]any) (json.RawMessage, error) {
	return c.call(ctx, "mutation", functionPath, args)
}

func (c *ConvexClient) call(ctx context.Context, kind, functionPath string, args map[string]any) (json.RawMessage, error) {
	if args == nil {
		args = map[string]any{}
	}
	jsonData, err := json.Marshal(convexRequest{Path: functionPath, Args: args, Format: "json"})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/%s", c.baseURL, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute %s %s: %w", kind, functionPath, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s status %d: %s", ErrRemote, functionPath, resp.StatusCode, string(body))
	}

	var convexResp convexResponse
	if err := json.Unmarshal(body, &convexResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	if convexResp.Status != "success" {
		errMsg := "unknown error"
		if convexResp.Error != nil {
			errMsg = *convexResp.Error
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrRemote, functionPath, errMsg)
	}

	return convexResp.Value, nil
}

// PatternScript is a boss pattern script stored in Convex
type PatternScript struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	CreatedAt int64  `json:"createdAt"`
}

// FetchPatternScript fetches the code of a boss pattern script by name
func (c *ConvexClient) FetchPatternScript(ctx context.Context, name string) (string, error) {
	result, err := c.Query(ctx, "patterns:getByName", map[string]any{"name": name})
	if err != nil {
		return "", err
	}
	if string(result) == "null" {
		return "", fmt.Errorf("%w: pattern script %q not found", ErrRemote, name)
	}

	var script PatternScript
	if err := json.Unmarshal(result, &script); err != nil {
		return "", fmt.Errorf("parse pattern script: %w", err)
	}
	return script.Code, nil
}

// ConvexStore is a leaderboard kept in a Convex table
type ConvexStore struct {
	client *ConvexClient
	size   int
}

// NewConvexStore creates a remote leaderboard capped at size entries
func NewConvexStore(client *ConvexClient, size int) *ConvexStore {
	return &ConvexStore{client: client, size: size}
}

// Submit records score and returns the top scores, highest first
func (s *ConvexStore) Submit(ctx context.Context, score int) ([]int, error) {
	result, err := s.client.Mutation(ctx, "scores:submit", map[string]any{
		"score": score,
		"limit": s.size,
	})
	if err != nil {
		return nil, err
	}
	return decodeScores(result)
}

// Top returns the stored top scores
func (s *ConvexStore) Top(ctx context.Context) ([]int, error) {
	result, err := s.client.Query(ctx, "scores:top", map[string]any{"limit": s.size})
	if err != nil {
		return nil, err
	}
	return decodeScores(result)
}

// decodeScores accepts numbers in either integer or float notation
func decodeScores(raw json.RawMessage) ([]int, error) {
	var values []float64
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("parse scores: %w", err)
	}
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out, nil
}
