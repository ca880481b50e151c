package itunes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"AppRanker/internal/config"
	"AppRanker/internal/domain"
	"AppRanker/internal/ports"
)

// Lookup outcomes reported to the Recorder.
const (
	OutcomeOK         = "ok"
	OutcomeTransport  = "transport_error"
	OutcomeHTTPStatus = "http_error"
	OutcomeDecode     = "decode_error"
	OutcomeNotFound   = "not_found"
	OutcomeIncomplete = "incomplete"
)

const lookupOp = "lookup"

var errNoResults = errors.New("no results")

// Client implements ports.MetadataProvider on top of the iTunes lookup API.
type Client struct {
	lookupURL   string
	country     string
	userAgent   string
	concurrency int
	http        *http.Client
	limiter     *rate.Limiter
	recorder    ports.Recorder
	logger      *slog.Logger
}

var _ ports.MetadataProvider = (*Client)(nil)

// NewClient builds a lookup client from configuration; httpClient may be nil.
func NewClient(cfg config.ProviderConfig, httpClient *http.Client, recorder ports.Recorder, logger *slog.Logger) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 20 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &Client{
		lookupURL:   cfg.LookupURL,
		country:     cfg.Country,
		userAgent:   cfg.UserAgent,
		concurrency: concurrency,
		http:        httpClient,
		limiter:     rate.NewLimiter(limit, burst),
		recorder:    recorder,
		logger:      logger,
	}
}

// FetchOne looks up a single app. Every failure is returned as *domain.ProviderError.
func (c *Client) FetchOne(ctx context.Context, id string) (domain.AppRecord, error) {
	start := time.Now()
	rec, outcome, err := c.lookup(ctx, id)
	c.observe(outcome, time.Since(start))

	if err != nil {
		c.debug("lookup failed", "id", id, "outcome", outcome, "error", err)
		return domain.AppRecord{}, &domain.ProviderError{ID: id, Op: lookupOp, Err: err}
	}
	c.debug("lookup done", "id", id, "track", rec.TrackID)
	return rec, nil
}

// FetchMany looks up ids with at most `concurrency` requests in flight.
// Results keep the order of ids; the first failure cancels the remaining lookups.
func (c *Client) FetchMany(ctx context.Context, ids []string) ([]domain.AppRecord, error) {
	records := make([]domain.AppRecord, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, id := range ids {
		g.Go(func() error {
			rec, err := c.FetchOne(gctx, id)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) lookup(ctx context.Context, id string) (domain.AppRecord, string, error) {
	if strings.TrimSpace(id) == "" {
		return domain.AppRecord{}, OutcomeNotFound, &domain.EmptyInputError{Field: "id"}
	}

	target, err := c.buildLookupURL(id)
	if err != nil {
		return domain.AppRecord{}, OutcomeTransport, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return domain.AppRecord{}, OutcomeTransport, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return domain.AppRecord{}, OutcomeTransport, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.AppRecord{}, OutcomeTransport, fmt.Errorf("request lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.AppRecord{}, OutcomeHTTPStatus, fmt.Errorf("lookup returned %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.AppRecord{}, OutcomeDecode, fmt.Errorf("decode response: %w", err)
	}
	if body.ResultCount == 0 || len(body.Results) == 0 {
		return domain.AppRecord{}, OutcomeNotFound, errNoResults
	}

	rec, err := body.Results[0].toRecord()
	if err != nil {
		return domain.AppRecord{}, OutcomeIncomplete, err
	}
	return rec, OutcomeOK, nil
}

func (c *Client) buildLookupURL(id string) (string, error) {
	parsed, err := url.Parse(c.lookupURL)
	if err != nil {
		return "", fmt.Errorf("invalid lookup url %s: %w", c.lookupURL, err)
	}

	query := parsed.Query()
	query.Set("id", strings.TrimSpace(id))
	if c.country != "" {
		query.Set("country", c.country)
	}
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func (c *Client) observe(outcome string, elapsed time.Duration) {
	if c.recorder != nil {
		c.recorder.ObserveLookup(outcome, elapsed)
	}
}

func (c *Client) debug(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
