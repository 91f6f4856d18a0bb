package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"orbit-assistant/internal/application/port/output"
	"orbit-assistant/internal/domain/entity"
	"orbit-assistant/internal/infrastructure/transport"
)

var _ output.SearchPort = (*Client)(nil)

const (
	defaultEndpoint   = "https://api.tavily.com/search"
	defaultMaxResults = 5
	maxErrorBodyLen   = 512
)

type Client struct {
	endpoint   string
	maxResults int
	http       *http.Client
	logger     output.LoggerPort
}

type Config struct {
	Endpoint   string
	MaxResults int
	// Timeout is zero by default: searches are bounded only by the request context.
	Timeout time.Duration
	Logger  output.LoggerPort
}

func DefaultConfig() Config {
	return Config{
		Endpoint:   defaultEndpoint,
		MaxResults: defaultMaxResults,
	}
}

func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		maxResults: cfg.MaxResults,
		http:       transport.NewClient(cfg.Logger, cfg.Timeout),
		logger:     cfg.Logger,
	}
}

type searchRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	MaxResults    int    `json:"max_results"`
	IncludeAnswer bool   `json:"include_answer"`
}

type searchResponse struct {
	Answer  string `json:"answer"`
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// StatusError is a non-2xx answer from the search API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tavily http %d", e.StatusCode)
}

// Search never fails: any problem becomes a short notice the model can read.
func (c *Client) Search(ctx context.Context, query, apiKey string) string {
	c.info("Tavily search", "query", query)

	result, err := c.Fetch(ctx, query, apiKey)
	if err != nil {
		return c.degraded(err)
	}

	c.info("Tavily returned results", "count", len(result.Items), "hasAnswer", result.QuickAnswer != "")
	return result.Format()
}

// Fetch performs the raw API call.
func (c *Client) Fetch(ctx context.Context, query, apiKey string) (*entity.SearchResult, error) {
	payload, err := json.Marshal(searchRequest{
		APIKey:        apiKey,
		Query:         query,
		MaxResults:    c.maxResults,
		IncludeAnswer: true,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	result := &entity.SearchResult{QuickAnswer: decoded.Answer}
	for _, r := range decoded.Results {
		result.Items = append(result.Items, entity.SearchItem{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: cleanSnippet(r.Content),
		})
	}
	return result, nil
}

func (c *Client) degraded(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		c.warn("Tavily API error", "status", statusErr.StatusCode, "body", statusErr.Body)
		return fmt.Sprintf("Search failed (HTTP %d). Please check your Tavily API key.", statusErr.StatusCode)
	}

	c.warn("Tavily request failed", "error", err)
	return fmt.Sprintf("Search failed (%v). Please check your network connection.", err)
}

func (c *Client) info(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}

func (c *Client) warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
