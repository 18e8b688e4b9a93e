// Package enrich is the HTTP client for an optional third-party
// recommendation enrichment service. Callers try the remote service when it
// is configured and fall back to the local engine on any failure; the
// service is never required for correctness.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/priya-raman/shopsense/internal/customer"
	"github.com/priya-raman/shopsense/internal/recommend"
)

// requestTimeout bounds every enrichment call; the fallback engine is local
// and fast, so there is no point waiting longer.
const requestTimeout = 10 * time.Second

// Client is an HTTP client for the enrichment service
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// RecommendRequest is the request body for remote recommendations
type RecommendRequest struct {
	Customer      *customer.Record `json:"customer"`
	Strategy      string           `json:"strategy,omitempty"`
	SimilarityRow []float64        `json:"similarity_row,omitempty"`
}

// recommendResponse is the response envelope from the service
type recommendResponse struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// New creates an enrichment client
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Enabled reports whether the client is configured to be used
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != "" && c.apiKey != ""
}

// Recommend requests recommendations for an existing customer, passing the
// customer's similarity row so the service can do its own collaborative
// filtering.
func (c *Client) Recommend(ctx context.Context, r *customer.Record, strategy recommend.Strategy, simRow []float64) ([]recommend.Recommendation, error) {
	return c.post(ctx, "/recommend", RecommendRequest{
		Customer:      r,
		Strategy:      string(strategy),
		SimilarityRow: simRow,
	})
}

// RecommendNew requests recommendations for a customer not in the population
func (c *Client) RecommendNew(ctx context.Context, r *customer.Record) ([]recommend.Recommendation, error) {
	return c.post(ctx, "/recommend-new", RecommendRequest{Customer: r})
}

// IsRunning checks if the service is reachable
func (c *Client) IsRunning(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *Client) post(ctx context.Context, path string, payload RecommendRequest) ([]recommend.Recommendation, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enrichment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("enrichment failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result recommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result.Recommendations, nil
}
