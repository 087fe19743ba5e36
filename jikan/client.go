package jikan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// maxErrorBody caps how much of an error response is kept on APIError
const maxErrorBody = 512

// Client represents a Jikan API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	maxRetries int
	retryDelay time.Duration
	limiter    *rate.Limiter
	sleep      Sleeper
	logger     zerolog.Logger
}

// NewClient creates a new Jikan client
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid base URL %q", ErrInvalidConfig, baseURL)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		userAgent:  o.userAgent,
		maxRetries: o.maxRetries,
		retryDelay: o.retryDelay,
		limiter:    o.limiter,
		sleep:      o.sleep,
		logger:     logger,
	}, nil
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get performs a single GET attempt
func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().Str("url", requestURL).Msg("Making Jikan API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &APIError{
			URL:        requestURL,
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
	}

	return body, nil
}

// mangaEndpoint builds /manga/{id}{suffix} with the id path-escaped
func mangaEndpoint(id, suffix string) string {
	return "/manga/" + url.PathEscape(id) + suffix
}

// GetMangaFull retrieves the full manga record
func (c *Client) GetMangaFull(ctx context.Context, id string) (*MangaResponse, error) {
	body, err := c.FetchWithRetry(ctx, mangaEndpoint(id, "/full"))
	if err != nil {
		return nil, fmt.Errorf("failed to get manga %s: %w", id, err)
	}

	var response MangaResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse manga response: %w", err)
	}
	return &response, nil
}

// GetMangaCharacters retrieves the characters of a manga
func (c *Client) GetMangaCharacters(ctx context.Context, id string) (*CharactersResponse, error) {
	body, err := c.FetchWithRetry(ctx, mangaEndpoint(id, "/characters"))
	if err != nil {
		return nil, fmt.Errorf("failed to get characters for manga %s: %w", id, err)
	}

	var response CharactersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse characters response: %w", err)
	}

	c.logger.Debug().
		Str("manga_id", id).
		Int("count", len(response.Data)).
		Msg("Retrieved characters from Jikan")
	return &response, nil
}

// GetMangaRecommendations retrieves the recommendations of a manga
func (c *Client) GetMangaRecommendations(ctx context.Context, id string) (*RecommendationsResponse, error) {
	body, err := c.FetchWithRetry(ctx, mangaEndpoint(id, "/recommendations"))
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendations for manga %s: %w", id, err)
	}

	var response RecommendationsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations response: %w", err)
	}

	c.logger.Debug().
		Str("manga_id", id).
		Int("count", len(response.Data)).
		Msg("Retrieved recommendations from Jikan")
	return &response, nil
}
