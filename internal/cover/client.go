// Package cover locates and stores book cover images via Open Library.
// The inventory core never calls this package — it only records the
// relative path a fetch produced.
package cover

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// ErrNoCover means the lookup succeeded but Open Library lists no cover
// image for the book.
var ErrNoCover = errors.New("no cover image available")

// Client queries the Open Library search API for cover images.
type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	coversURL  string
	limiter    *rate.Limiter
	maxRetries int
	logger     *slog.Logger
}

// NewClient creates a cover lookup client. Open Library asks for a
// descriptive User-Agent and modest request rates.
func NewClient(userAgent string, rps, maxRetries int, logger *slog.Logger) *Client {
	if rps <= 0 {
		rps = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent:  userAgent,
		baseURL:    "https://openlibrary.org",
		coversURL:  "https://covers.openlibrary.org",
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// searchResponse matches the fields of search.json we ask for.
type searchResponse struct {
	NumFound int `json:"numFound"`
	Docs     []struct {
		Title   string `json:"title"`
		CoverID int    `json:"cover_i"`
	} `json:"docs"`
}

// FindCoverURL searches by title and author and returns the URL of a
// medium-size cover image. Returns ErrNoCover when the search matches
// nothing or the best match has no cover listed.
func (c *Client) FindCoverURL(ctx context.Context, title, author string) (string, error) {
	q := url.Values{}
	q.Set("title", title)
	q.Set("author", author)
	q.Set("fields", "title,cover_i")
	q.Set("limit", "3")
	u := fmt.Sprintf("%s/search.json?%s", c.baseURL, q.Encode())

	var res searchResponse
	if err := c.getJSON(ctx, u, &res); err != nil {
		return "", err
	}
	for _, d := range res.Docs {
		if d.CoverID != 0 {
			return fmt.Sprintf("%s/b/id/%d-M.jpg", c.coversURL, d.CoverID), nil
		}
	}
	return "", ErrNoCover
}

// Fetch locates the cover for title/author and stores it in dir.
// Returns the stored file's path relative to the directory base, so it
// can be recorded on the book record as-is.
func (c *Client) Fetch(ctx context.Context, title, author string, dir Dir) (string, error) {
	coverURL, err := c.FindCoverURL(ctx, title, author)
	if err != nil {
		return "", err
	}

	body, err := c.get(ctx, coverURL)
	if err != nil {
		return "", fmt.Errorf("downloading cover: %w", err)
	}
	defer func() { _ = body.Close() }()

	name := Sanitize(title+"-"+author) + ".jpg"
	if err := dir.Store(name, body); err != nil {
		return "", err
	}
	c.logger.Info("cover stored", "title", title, "file", name)
	return name, nil
}

func (c *Client) getJSON(ctx context.Context, url string, target any) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()
	return json.NewDecoder(body).Decode(target)
}

// get issues a rate-limited GET with retry on 429/5xx, backing off
// 1s, 2s, 4s… between attempts.
func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
				continue
			}
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		return resp.Body, nil
	}
	return nil, fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}
