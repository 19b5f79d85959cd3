// Package upstream wraps the outbound calls to the dealer/review service and
// the sentiment analyzer. Every failure mode collapses into ErrNoData so the
// layers above never handle upstream-specific errors.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"dealerreview/internal/logger"
	"dealerreview/internal/metrics"
)

const (
	// DefaultTimeout bounds every outbound call when Config.Timeout is unset.
	DefaultTimeout = 10 * time.Second
	// SentimentUnavailable is reported when the analyzer cannot be reached.
	SentimentUnavailable = "N/A"

	maxBodyBytes = 8 << 20

	serviceDealers   = "dealers"
	serviceSentiment = "sentiment"
)

// ErrNoData is the single failure signal returned by the gateway.
var ErrNoData = errors.New("upstream returned no data")

// Config points the gateway at its upstream services.
type Config struct {
	DealerBaseURL    string
	SentimentBaseURL string
	Timeout          time.Duration
}

// SentimentResult is the analyzer's verdict for a piece of text.
type SentimentResult struct {
	Sentiment string `json:"sentiment"`
}

// Gateway is the outbound surface used by the proxy layer.
type Gateway interface {
	FetchDealers(ctx context.Context, state string) (json.RawMessage, error)
	FetchDealerDetails(ctx context.Context, dealerID int) (json.RawMessage, error)
	FetchReviews(ctx context.Context, dealerID int) (json.RawMessage, error)
	AnalyzeSentiment(ctx context.Context, text string) SentimentResult
	SubmitReview(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error)
}

// Client is the HTTP implementation of Gateway.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        logger.ILogger
	metrics    *metrics.Metrics
}

// Ensure Client implements Gateway
var _ Gateway = (*Client)(nil)

// NewClient builds a gateway client. m may be nil.
func NewClient(cfg Config, log logger.ILogger, m *metrics.Metrics) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.DealerBaseURL = strings.TrimRight(cfg.DealerBaseURL, "/")
	cfg.SentimentBaseURL = strings.TrimRight(cfg.SentimentBaseURL, "/")

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
		metrics:    m,
	}
}

// FetchDealers lists all dealers, or those in state when state is non-empty.
// A {"dealers": [...]} envelope is unwrapped; any other body is returned as is.
func (c *Client) FetchDealers(ctx context.Context, state string) (json.RawMessage, error) {
	endpoint := "/fetchDealers"
	if state != "" {
		endpoint += "/" + url.PathEscape(state)
	}

	body, err := c.call(ctx, serviceDealers, "fetch_dealers", http.MethodGet, c.cfg.DealerBaseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}

	if parsed := gjson.ParseBytes(body); parsed.IsObject() {
		if dealers := parsed.Get("dealers"); dealers.Exists() {
			return json.RawMessage(dealers.Raw), nil
		}
	}
	return body, nil
}

// FetchDealerDetails returns the dealer record verbatim.
func (c *Client) FetchDealerDetails(ctx context.Context, dealerID int) (json.RawMessage, error) {
	endpoint := "/fetchDealer/" + strconv.Itoa(dealerID)
	return c.call(ctx, serviceDealers, "fetch_dealer", http.MethodGet, c.cfg.DealerBaseURL+endpoint, nil)
}

// FetchReviews returns the reviews of a dealer verbatim.
func (c *Client) FetchReviews(ctx context.Context, dealerID int) (json.RawMessage, error) {
	endpoint := "/fetchReviews/dealer/" + strconv.Itoa(dealerID)
	return c.call(ctx, serviceDealers, "fetch_reviews", http.MethodGet, c.cfg.DealerBaseURL+endpoint, nil)
}

// AnalyzeSentiment never fails: an unreachable or confused analyzer yields "N/A".
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) SentimentResult {
	endpoint := "/analyze/" + url.PathEscape(text)
	body, err := c.call(ctx, serviceSentiment, "analyze", http.MethodGet, c.cfg.SentimentBaseURL+endpoint, nil)
	if err != nil {
		return SentimentResult{Sentiment: SentimentUnavailable}
	}

	var result SentimentResult
	if err := json.Unmarshal(body, &result); err != nil || result.Sentiment == "" {
		c.log.Warning("sentiment response without verdict", logger.String("body", truncate(body)))
		return SentimentResult{Sentiment: SentimentUnavailable}
	}
	return result
}

// SubmitReview posts a review; both 200 and 201 count as accepted.
func (c *Client) SubmitReview(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	return c.call(ctx, serviceDealers, "insert_review", http.MethodPost, c.cfg.DealerBaseURL+"/insert_review", payload)
}

func (c *Client) call(ctx context.Context, service, operation, method, target string, payload interface{}) (json.RawMessage, error) {
	start := time.Now()
	body, outcome, err := c.roundTrip(ctx, method, target, payload)
	c.metrics.RecordUpstreamCall(service, operation, outcome, time.Since(start))
	if err != nil {
		c.log.Warning("upstream call failed",
			logger.String("service", service),
			logger.String("operation", operation),
			logger.String("url", target),
			logger.String("outcome", outcome),
			logger.Error(err),
		)
		return nil, ErrNoData
	}
	c.log.Debug("upstream call succeeded",
		logger.String("service", service),
		logger.String("operation", operation),
		logger.Duration("elapsed", time.Since(start)),
	)
	return body, nil
}

func (c *Client) roundTrip(ctx context.Context, method, target string, payload interface{}) (json.RawMessage, string, error) {
	var bodyReader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, metrics.OutcomeTransport, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, metrics.OutcomeTransport, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, metrics.OutcomeTransport, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, metrics.OutcomeTransport, fmt.Errorf("read response body: %w", err)
	}

	if !accepted(method, resp.StatusCode) {
		return nil, metrics.OutcomeStatus, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body))
	}
	if !gjson.ValidBytes(body) {
		return nil, metrics.OutcomeDecode, fmt.Errorf("response is not valid JSON: %s", truncate(body))
	}
	return json.RawMessage(body), metrics.OutcomeSuccess, nil
}

func accepted(method string, status int) bool {
	if method == http.MethodPost {
		return status == http.StatusOK || status == http.StatusCreated
	}
	return status == http.StatusOK
}

func truncate(body []byte) string {
	const limit = 256
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "...(truncated)"
	}
	return s
}
