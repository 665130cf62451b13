// Package fetch retrieves historical draw results from the public lottery
// result APIs. It produces typed draws for storage or CSV export; the
// generation engine never calls it.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/roei-asher/Lottery/internal/domain"
)

// Published draw-result endpoints.
const (
	MegaMillionsEndpoint = "https://www.masslottery.com/api/v1/draw-results/mega_millions"
	PowerballEndpoint    = "https://www.masslottery.com/api/v1/draw-results/powerball"
)

// Default client configuration.
const (
	DefaultTimeout     = 30 * time.Second
	DefaultMaxRetries  = 3
	DefaultRetryDelay  = 1 * time.Second
	DefaultMaxDelay    = 10 * time.Second
	DefaultBackoffMult = 2.0

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client fetches draw results over HTTP with retries and exponential
// backoff.
type Client struct {
	endpoint    string
	profile     domain.Profile
	client      *http.Client
	maxRetries  int
	retryDelay  time.Duration
	maxDelay    time.Duration
	backoffMult float64
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.client.Timeout = d }
}

// WithMaxRetries sets the maximum retry attempts.
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) { c.maxRetries = n }
}

// WithRetryDelay sets the initial retry delay.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *Client) { c.retryDelay = d }
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) { c.client = client }
}

// NewClient creates a draw-result client for one game endpoint.
func NewClient(endpoint string, profile domain.Profile, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:    endpoint,
		profile:     profile,
		client:      &http.Client{Timeout: DefaultTimeout},
		maxRetries:  DefaultMaxRetries,
		retryDelay:  DefaultRetryDelay,
		maxDelay:    DefaultMaxDelay,
		backoffMult: DefaultBackoffMult,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DrawResults fetches all draws in [from, to] and returns them validated
// and ordered most-recent-first. Draws the API reports in a shape the
// profile rejects are skipped, not fatal: result feeds occasionally carry
// malformed historical rows.
func (c *Client) DrawResults(ctx context.Context, from, to time.Time) ([]domain.Draw, error) {
	body, err := c.get(ctx, from, to)
	if err != nil {
		return nil, err
	}

	rawDraws, err := decodeDrawList(body)
	if err != nil {
		return nil, err
	}

	var draws []domain.Draw
	for _, raw := range rawDraws {
		draw, err := raw.toDraw(c.profile)
		if err != nil {
			continue
		}
		draws = append(draws, draw)
	}

	sort.SliceStable(draws, func(i, j int) bool {
		return draws[i].Date.After(draws[j].Date)
	})
	return draws, nil
}

// get performs the GET request with retries and exponential backoff.
func (c *Client) get(ctx context.Context, from, to time.Time) ([]byte, error) {
	query := url.Values{}
	query.Set("draw_date_min", from.Format("2006-01-02"))
	query.Set("draw_date_max", to.Format("2006-01-02"))
	requestURL := c.endpoint + "?" + query.Encode()

	delay := c.retryDelay
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay = time.Duration(float64(delay) * c.backoffMult)
			if delay > c.maxDelay {
				delay = c.maxDelay
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("http request: %w", err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limited (429)")
			continue
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
			continue
		}

		return body, nil
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// rawDraw mirrors one draw object as the result APIs deliver it. Field
// names drift across games and API revisions, so several aliases are
// accepted.
type rawDraw struct {
	DrawDate       string          `json:"drawDate"`
	DrawDateSnake  string          `json:"draw_date"`
	Date           string          `json:"date"`
	WinningNumbers []int           `json:"winningNumbers"`
	MegaBall       *int            `json:"megaBall"`
	Powerball      *int            `json:"powerball"`
	Extras         json.RawMessage `json:"extras"`
}

// rawExtras holds the special-number aliases nested under "extras".
type rawExtras struct {
	MegaBall  *int `json:"megaBall"`
	Powerball *int `json:"powerball"`
}

// decodeDrawList accepts either a bare JSON array of draws or an object
// wrapping the array under one of the known keys.
func decodeDrawList(body []byte) ([]rawDraw, error) {
	var list []rawDraw
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	for _, key := range []string{"draws", "results", "data", "winningNumbers"} {
		raw, ok := wrapper[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("unmarshal %q list: %w", key, err)
		}
		return list, nil
	}

	return nil, fmt.Errorf("response carries no recognizable draw list")
}

func (r rawDraw) toDraw(p domain.Profile) (domain.Draw, error) {
	var draw domain.Draw

	dateStr := r.DrawDate
	if dateStr == "" {
		dateStr = r.DrawDateSnake
	}
	if dateStr == "" {
		dateStr = r.Date
	}
	if dateStr == "" {
		return draw, fmt.Errorf("draw missing date field")
	}

	date, err := parseAPIDate(dateStr)
	if err != nil {
		return draw, err
	}
	draw.Date = date

	if len(r.WinningNumbers) < p.RegularCount {
		return draw, fmt.Errorf("draw %s has %d winning numbers, need %d",
			dateStr, len(r.WinningNumbers), p.RegularCount)
	}
	draw.Regular = append(draw.Regular, r.WinningNumbers[:p.RegularCount]...)

	special := r.special()
	if special == nil {
		return draw, fmt.Errorf("draw %s missing special number", dateStr)
	}
	draw.Special = *special

	if err := draw.Validate(p); err != nil {
		return draw, err
	}
	return draw, nil
}

// special resolves the special number from the top-level fields or from
// extras, whichever the API populated.
func (r rawDraw) special() *int {
	if r.MegaBall != nil {
		return r.MegaBall
	}
	if r.Powerball != nil {
		return r.Powerball
	}
	if len(r.Extras) > 0 {
		var extras rawExtras
		if err := json.Unmarshal(r.Extras, &extras); err == nil {
			if extras.MegaBall != nil {
				return extras.MegaBall
			}
			if extras.Powerball != nil {
				return extras.Powerball
			}
		}
	}
	return nil
}

// parseAPIDate accepts the date formats the result APIs emit.
func parseAPIDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable draw date %q", s)
}
