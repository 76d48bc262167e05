// Package openlibrary implements the read-only HTTP client for the
// Open Library catalog: general search, author search, subject browse
// and cover image URL derivation.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://openlibrary.org"
	DefaultCoversURL = "https://covers.openlibrary.org/b"

	// PlaceholderCover is the local image reference used when a work has
	// no cover id, so consumers never render a broken link.
	PlaceholderCover = "/placeholder-book.png"

	// DefaultCoverSize is the medium cover preset.
	DefaultCoverSize = "M"
)

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	coversURL  string
	limiter    *rate.Limiter
}

// NewClient builds a catalog client. Query failures are not retried:
// callers treat a failed query as an empty result, so retrying here
// would only delay that outcome.
func NewClient(baseURL, coversURL, userAgent string, rps int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if coversURL == "" {
		coversURL = DefaultCoversURL
	}
	if rps <= 0 {
		rps = 2
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: userAgent,
		baseURL:   strings.TrimRight(baseURL, "/"),
		coversURL: strings.TrimRight(coversURL, "/"),
		limiter:   rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// SearchResponse matches search.json.
type SearchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []SearchDoc `json:"docs"`
}

type SearchDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name"`
	AuthorKeys       []string `json:"author_key"`
	CoverID          int64    `json:"cover_i"`
	FirstPublishYear int      `json:"first_publish_year"`
	ISBN             []string `json:"isbn"`
	Publisher        []string `json:"publisher"`
	Subjects         []string `json:"subject"`
}

// SubjectResponse matches subjects/{slug}.json. Its works carry a
// narrower field set than search docs.
type SubjectResponse struct {
	Key       string        `json:"key"`
	Name      string        `json:"name"`
	WorkCount int           `json:"work_count"`
	Works     []SubjectWork `json:"works"`
}

type SubjectWork struct {
	Key              string          `json:"key"`
	Title            string          `json:"title"`
	Authors          []SubjectAuthor `json:"authors"`
	CoverID          int64           `json:"cover_id"`
	FirstPublishYear int             `json:"first_publish_year"`
	Subjects         []string        `json:"subject"`
}

type SubjectAuthor struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Search runs a free-text query against the general search endpoint.
func (c *Client) Search(ctx context.Context, query string, limit int) (*SearchResponse, error) {
	u := fmt.Sprintf("%s/search.json?q=%s&limit=%d", c.baseURL, url.QueryEscape(query), limit)

	var res SearchResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SearchByAuthor runs an author-filtered query. The response shape is
// identical to Search.
func (c *Client) SearchByAuthor(ctx context.Context, author string, limit int) (*SearchResponse, error) {
	u := fmt.Sprintf("%s/search.json?author=%s&limit=%d", c.baseURL, url.QueryEscape(author), limit)

	var res SearchResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// BrowseSubject fetches the work list for a subject slug. The slug is
// lowercased, matching how the catalog names its subject pages.
func (c *Client) BrowseSubject(ctx context.Context, subject string, limit int) (*SubjectResponse, error) {
	slug := url.PathEscape(strings.ToLower(subject))
	u := fmt.Sprintf("%s/subjects/%s.json?limit=%d", c.baseURL, slug, limit)

	var res SubjectResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CoverURL derives the cover image URL for a cover id. A zero id means
// the catalog has no cover for the work and yields PlaceholderCover.
func (c *Client) CoverURL(coverID int64, size string) string {
	if coverID == 0 {
		return PlaceholderCover
	}
	if size == "" {
		size = DefaultCoverSize
	}
	return fmt.Sprintf("%s/id/%d-%s.jpg", c.coversURL, coverID, size)
}

func (c *Client) get(ctx context.Context, target string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	// Tag each outbound call so failures can be correlated in logs.
	requestID := uuid.New().String()
	req.Header.Set("X-Request-Id", requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request %s: %w", requestID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog request %s: unexpected status code: %d", requestID, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog request %s: decode response: %w", requestID, err)
	}
	return nil
}
