// Package apiclient talks to the shared vote-aggregate backend. Failures are
// reported to the caller as errors and never retried here; the vote flow
// decides what degrades and what surfaces.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/example/wordomikuji/pkg/models"
)

// Client is a typed HTTP client for the backend REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL (e.g. http://localhost:8787)
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type voteRequest struct {
	WordID string `json:"wordId"`
	Knows  bool   `json:"knows"`
}

type voteResponse struct {
	Success bool `json:"success"`
}

// SubmitVote uploads one vote to the community tally. A non-2xx status or a
// success:false body both count as failure.
func (c *Client) SubmitVote(ctx context.Context, wordID string, knows bool) error {
	body, err := json.Marshal(voteRequest{WordID: wordID, Knows: knows})
	if err != nil {
		return fmt.Errorf("failed to encode vote: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/vote", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build vote request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit vote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("vote request failed with status %d", resp.StatusCode)
	}

	var vr voteResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return fmt.Errorf("failed to decode vote response: %w", err)
	}
	if !vr.Success {
		return fmt.Errorf("vote was rejected by the server")
	}
	return nil
}

// WordStats fetches the tally for one word. A 404 means nobody voted yet and
// maps to an all-zero tally, matching how the original client treated it.
func (c *Client) WordStats(ctx context.Context, wordID string) (*models.WordStats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/stats/"+url.PathEscape(wordID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build stats request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &models.WordStats{WordID: wordID}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats request failed with status %d", resp.StatusCode)
	}

	var stats models.WordStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %w", err)
	}
	return &stats, nil
}

// UnknownRanking fetches the words most often voted "don't know"
func (c *Client) UnknownRanking(ctx context.Context, limit int) ([]models.RankingEntry, error) {
	return c.ranking(ctx, "unknown", limit)
}

// KnownRanking fetches the words most often voted "know"
func (c *Client) KnownRanking(ctx context.Context, limit int) ([]models.RankingEntry, error) {
	return c.ranking(ctx, "known", limit)
}

func (c *Client) ranking(ctx context.Context, kind string, limit int) ([]models.RankingEntry, error) {
	endpoint := c.baseURL + "/api/ranking/" + kind + "?limit=" + strconv.Itoa(limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build ranking request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ranking: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ranking request failed with status %d", resp.StatusCode)
	}

	var entries []models.RankingEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode ranking response: %w", err)
	}
	return entries, nil
}
