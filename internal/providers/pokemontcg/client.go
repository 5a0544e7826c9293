package pokemontcg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tcg-price-service/internal/domain"
	"tcg-price-service/internal/providers"
)

// Config controls how the pokemontcg client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	PageSize   int
	MaxPages   int
	// PageDelay spaces successive page requests to stay under upstream quotas.
	PageDelay time.Duration
}

// Client fetches sets and cards from the Pokemon TCG API and maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	pageSize   int
	maxPages   int
	pageDelay  time.Duration
}

// NewClient constructs a pokemontcg client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		pageSize:   resolvePageSize(cfg.PageSize),
		maxPages:   resolveMaxPages(cfg.MaxPages),
		pageDelay:  cfg.PageDelay,
	}
}

// FetchSets retrieves the full set catalog, following pagination.
func (c *Client) FetchSets(ctx context.Context) ([]domain.SetInfo, error) {
	allSets := make([]domain.SetInfo, 0)
	page := 1

	for {
		var payload setsResponse
		if err := c.getPage(ctx, "/sets", "", page, &payload); err != nil {
			return nil, err
		}

		for _, s := range payload.Data {
			allSets = append(allSets, mapSet(s))
		}

		if lastPage(page, len(payload.Data), payload.Count, payload.TotalCount, c.pageSize) || page >= c.maxPages {
			break
		}
		if err := c.waitPageDelay(ctx); err != nil {
			return nil, err
		}
		page++
	}

	return allSets, nil
}

// FetchCards retrieves all cards matching the query, following pagination.
func (c *Client) FetchCards(ctx context.Context, query string) ([]domain.Card, error) {
	allCards := make([]domain.Card, 0)
	page := 1

	for {
		var payload cardsResponse
		if err := c.getPage(ctx, "/cards", query, page, &payload); err != nil {
			return nil, err
		}

		for _, card := range payload.Data {
			allCards = append(allCards, mapCard(card))
		}

		if lastPage(page, len(payload.Data), payload.Count, payload.TotalCount, c.pageSize) || page >= c.maxPages {
			break
		}
		if err := c.waitPageDelay(ctx); err != nil {
			return nil, err
		}
		page++
	}

	return allCards, nil
}

func (c *Client) getPage(ctx context.Context, path, query string, page int, payload any) error {
	req, err := c.buildRequest(ctx, path, query, page)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("pokemontcg: unexpected status %d on %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		return fmt.Errorf("pokemontcg: decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, path, query string, page int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	if query != "" {
		q.Set("q", query)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	req.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	return req, nil
}

func (c *Client) waitPageDelay(ctx context.Context) error {
	if c.pageDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.pageDelay):
		return nil
	}
}

// lastPage reports whether pagination is exhausted: the upstream reports
// count/totalCount per page, and a short or empty page also terminates.
func lastPage(page, received, count, totalCount, pageSize int) bool {
	if received == 0 {
		return true
	}
	if totalCount > 0 && count > 0 {
		return page*count >= totalCount
	}
	return received < pageSize
}
