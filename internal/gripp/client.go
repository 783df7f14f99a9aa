package gripp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mwiersma/grippsync/internal/config"
	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/internal/metrics"
	"github.com/mwiersma/grippsync/models"
)

// Client performs single calls against the remote API. It is safe for
// concurrent use; all mutable state is the call id counter.
type Client struct {
	rest *resty.Client
	cfg  config.Gripp
	log  *logger.Logger

	nextID atomic.Int64
}

// NewClient constructs a Client from the merged configuration. Zero config
// fields fall back to conservative defaults.
func NewClient(cfg config.Gripp, log *logger.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 4
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = 500 * time.Millisecond
	}
	if cfg.DefaultRetryAfter <= 0 {
		cfg.DefaultRetryAfter = 5 * time.Second
	}

	rest := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.Token)

	log.Debug().Str("base_url", cfg.BaseURL).Msg("creating remote client")
	return &Client{rest: rest, cfg: cfg, log: log}
}

// callEnvelope is one call descriptor; the request body is an array with a
// single descriptor.
type callEnvelope struct {
	Method string `json:"method"`
	Params [2]any `json:"params"`
	ID     int64  `json:"id"`
}

type responseEnvelope struct {
	ID        int64           `json:"id"`
	Result    json.RawMessage `json:"result"`
	Error     json.RawMessage `json:"error"`
	ErrorCode int             `json:"error_code"`
}

// resultPayload is the object form of the result field. The remote also
// returns a bare row array for some methods; decodeResult handles both.
type resultPayload struct {
	Rows      []json.RawMessage      `json:"rows"`
	Paging    *models.ResponsePaging `json:"paging"`
	MoreItems *bool                  `json:"more_items_in_collection"`
}

// Execute performs one remote call, retrying transport and 5xx failures up
// to the configured maximum with exponential backoff
// (delay = RetryBase * 2^attempt). Rate-limit signals are returned to the
// caller untouched so the queue can honor the Retry-After hint; application
// errors surface immediately.
func (c *Client) Execute(ctx context.Context, method string, filters []models.Filter, options *models.Options) (*models.CallResult, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.cfg.RetryBase << (attempt - 1)
			log.Debug().
				Str("func", "*Client.Execute").
				Str("method", method).
				Int("attempt", attempt).
				Dur("delay", delay).
				Msg("retrying remote call after backoff")
			metrics.OutboundRetries.Inc()

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := c.call(ctx, method, filters, options)
		if err == nil {
			return result, nil
		}
		lastErr = err

		var remote *RemoteError
		if !errors.As(err, &remote) || !remote.Retryable() {
			return nil, err
		}
		log.Warn().
			Str("func", "*Client.Execute").
			Str("method", method).
			Str("kind", remote.Kind.String()).
			Int("status", remote.StatusCode).
			Msg("remote call failed")
	}

	return nil, lastErr
}

// call performs exactly one wire round trip and classifies the outcome.
func (c *Client) call(ctx context.Context, method string, filters []models.Filter, options *models.Options) (*models.CallResult, error) {
	if filters == nil {
		filters = []models.Filter{}
	}
	if options == nil {
		options = &models.Options{}
	}

	envelope := callEnvelope{
		Method: method,
		Params: [2]any{filters, options},
		ID:     c.nextID.Add(1),
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]callEnvelope{envelope}).
		Post("")
	if err != nil {
		// no response at all: connection failure or call timeout
		return nil, &RemoteError{
			Kind:    KindTransport,
			Message: fmt.Sprintf("%s: no response", method),
			Details: err.Error(),
		}
	}

	if rlErr := c.classifyStatus(resp, method); rlErr != nil {
		return nil, rlErr
	}

	return decodeResult(resp.Body(), method)
}

// classifyStatus maps a received HTTP status to the error taxonomy; nil
// means the body is worth decoding.
func (c *Client) classifyStatus(resp *resty.Response, method string) *RemoteError {
	status := resp.StatusCode()
	switch {
	case status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable:
		metrics.RateLimitHits.Inc()
		return &RemoteError{
			Kind:       KindRateLimit,
			Message:    fmt.Sprintf("%s: rate limited", method),
			StatusCode: status,
			RetryAfter: parseRetryAfter(resp.Header().Get("Retry-After"), c.cfg.DefaultRetryAfter),
		}
	case status >= http.StatusInternalServerError:
		return &RemoteError{
			Kind:       KindServer,
			Message:    fmt.Sprintf("%s: http %d", method, status),
			Details:    strings.TrimSpace(string(resp.Body())),
			StatusCode: status,
		}
	case status >= http.StatusBadRequest:
		return &RemoteError{
			Kind:       KindApplication,
			Message:    fmt.Sprintf("%s: http %d", method, status),
			Details:    strings.TrimSpace(string(resp.Body())),
			StatusCode: status,
		}
	}
	return nil
}

// decodeResult deserializes a 2xx body. The response is either a single
// envelope or an array with one envelope mirroring the batched request.
func decodeResult(body []byte, method string) (*models.CallResult, error) {
	envelope, err := decodeEnvelope(body)
	if err != nil {
		return nil, &RemoteError{
			Kind:    KindApplication,
			Message: fmt.Sprintf("%s: malformed response", method),
			Details: err.Error(),
		}
	}

	if len(envelope.Error) > 0 && string(envelope.Error) != "null" || envelope.ErrorCode != 0 {
		return nil, &RemoteError{
			Kind:    KindApplication,
			Message: fmt.Sprintf("%s: remote error %d", method, envelope.ErrorCode),
			Details: strings.Trim(string(envelope.Error), `"`),
		}
	}

	result := &models.CallResult{}
	trimmed := bytes.TrimSpace(envelope.Result)
	switch {
	case len(trimmed) == 0 || string(trimmed) == "null":
		// an empty result is a valid empty page
	case trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &result.Rows); err != nil {
			return nil, &RemoteError{
				Kind:    KindApplication,
				Message: fmt.Sprintf("%s: malformed result rows", method),
				Details: err.Error(),
			}
		}
	default:
		var payload resultPayload
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return nil, &RemoteError{
				Kind:    KindApplication,
				Message: fmt.Sprintf("%s: malformed result", method),
				Details: err.Error(),
			}
		}
		result.Rows = payload.Rows
		result.Paging = payload.Paging
		result.MoreItems = payload.MoreItems
	}

	return result, nil
}

func decodeEnvelope(body []byte) (*responseEnvelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var batch []responseEnvelope
		if err := json.Unmarshal(trimmed, &batch); err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			return nil, fmt.Errorf("empty response batch")
		}
		return &batch[0], nil
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

// parseRetryAfter interprets the Retry-After header as whole seconds; the
// fallback applies when the header is absent or unparsable.
func parseRetryAfter(header string, fallback time.Duration) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return fallback
	}

	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
