// Package scraper talks to the external scraping provider and falls
// back to generated data when no provider token is configured.
package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"social-analytics-backend/internal/domains/collection/model"
)

const (
	defaultBaseURL = "https://api.apify.com/v2"
	defaultActor   = "apify~instagram-scraper"
	defaultTimeout = 120 * time.Second
)

// Scraper fetches the latest posts for an account.
type Scraper interface {
	FetchPosts(ctx context.Context, username string, limit int) ([]model.RawPost, error)
}

// Client is the live provider implementation.
type Client struct {
	baseURL    string
	actor      string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

func WithActor(actor string) Option {
	return func(c *Client) { c.actor = actor }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		actor:      defaultActor,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasToken reports whether the client can reach the live provider.
func (c *Client) HasToken() bool {
	return c.token != ""
}

type runInput struct {
	Usernames    []string `json:"usernames"`
	ResultsLimit int      `json:"resultsLimit"`
	ResultsType  string   `json:"resultsType"`
}

// FetchPosts runs the provider actor synchronously and returns its
// dataset items.
func (c *Client) FetchPosts(ctx context.Context, username string, limit int) ([]model.RawPost, error) {
	endpoint := fmt.Sprintf("%s/acts/%s/run-sync-get-dataset-items?token=%s",
		c.baseURL, c.actor, url.QueryEscape(c.token))

	body, err := json.Marshal(runInput{
		Usernames:    []string{username},
		ResultsLimit: limit,
		ResultsType:  "posts",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var posts []model.RawPost
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	if len(posts) == 0 {
		return nil, model.ErrNoData
	}

	return posts, nil
}
