// Package analytics talks to the analysis service that answers chat
// prompts with either plain text or a chart specification.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/retry"
	"github.com/google/uuid"

	"github.com/midbel/chatcharts/logging"
)

var (
	ErrEmptyPrompt = errors.New("empty prompt")
	ErrRejected    = errors.New("request rejected")
	ErrUnavailable = errors.New("service unavailable")
	ErrMalformed   = errors.New("malformed reply")
)

const (
	DefaultEndpoint = "http://localhost:8000/analyze"
	userAgent       = "chatchart/1.0"
	maxErrorBody    = 4096
)

type Config struct {
	Endpoint   string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	// Threshold is the number of consecutive failures opening the
	// circuit.
	Threshold int
	Client    *http.Client
}

func DefaultConfig() Config {
	return Config{
		Endpoint:   DefaultEndpoint,
		Timeout:    30 * time.Second,
		Retries:    3,
		RetryDelay: 500 * time.Millisecond,
		Threshold:  5,
	}
}

type Client struct {
	endpoint string
	client   *http.Client
	retrier  retry.Retry[Answer]
	breaker  circuitbreaker.CircuitBreaker[Answer]
}

func New(cfg Config) *Client {
	def := DefaultConfig()
	if cfg.Endpoint == "" {
		cfg.Endpoint = def.Endpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.Retries <= 0 {
		cfg.Retries = def.Retries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = def.RetryDelay
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = def.Threshold
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: cfg.Timeout}
	}
	threshold := uint32(cfg.Threshold) // #nosec G115 -- threshold is positive
	return &Client{
		endpoint: cfg.Endpoint,
		client:   cfg.Client,
		retrier: retry.New[Answer](retry.Config{
			MaxAttempts:   cfg.Retries,
			InitialDelay:  cfg.RetryDelay,
			BackoffPolicy: retry.BackoffExponential,
			Multiplier:    2.0,
			// 4xx and undecodable replies will not get better by asking again
			NonRetryableErrors: []error{ErrRejected, ErrMalformed},
		}),
		breaker: circuitbreaker.New[Answer](circuitbreaker.Config{
			MaxRequests: 1,
			Interval:    cfg.Timeout,
			Timeout:     cfg.Timeout,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
		}),
	}
}

type request struct {
	Prompt    string  `json:"prompt"`
	SessionID *string `json:"session_id"`
}

// Ask sends a prompt to the analysis service. An empty sessionID starts
// a new conversation; the session to reuse is given back in the answer.
func (c *Client) Ask(ctx context.Context, prompt, sessionID string) (Answer, error) {
	if prompt == "" {
		return Answer{}, ErrEmptyPrompt
	}
	req := request{Prompt: prompt}
	if sessionID != "" {
		req.SessionID = &sessionID
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return Answer{}, fmt.Errorf("encode request: %w", err)
	}

	var (
		reqid   = uuid.NewString()
		attempt atomic.Int32
		last    atomic.Pointer[error]
		now     = time.Now()
	)
	ans, err := c.breaker.Execute(ctx, func(ctx context.Context) (Answer, error) {
		return c.retrier.Do(ctx, func(ctx context.Context) (Answer, error) {
			n := int(attempt.Add(1))
			ans, err := c.send(ctx, payload, reqid)
			if err != nil {
				last.Store(&err)
				fields := []logging.Field{
					logging.Endpoint(c.endpoint),
					logging.RequestID(reqid),
					logging.Attempt(n),
					logging.Err(err),
				}
				var se *StatusError
				if errors.As(err, &se) {
					fields = append(fields, logging.Status(se.Code))
				}
				logging.Warn().With(fields...).Msg("analyze attempt failed")
			}
			return ans, err
		})
	})
	if err != nil {
		if ctx.Err() != nil {
			return Answer{}, ctx.Err()
		}
		if p := last.Load(); p != nil {
			err = *p
		}
		if !errors.Is(err, ErrRejected) && !errors.Is(err, ErrMalformed) && !errors.Is(err, ErrUnavailable) {
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return Answer{}, err
	}
	logging.Debug().With(
		logging.Endpoint(c.endpoint),
		logging.RequestID(reqid),
		logging.Session(ans.SessionID),
		logging.Attempt(int(attempt.Load())),
		logging.Duration(time.Since(now)),
	).Msg("analyze done")
	return ans, nil
}

func (c *Client) send(ctx context.Context, payload []byte, reqid string) (Answer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %v", ErrRejected, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", reqid)

	res, err := c.client.Do(req)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return Answer{}, statusError(res.StatusCode, body)
	}
	var ans Answer
	if err := json.NewDecoder(res.Body).Decode(&ans); err != nil {
		return Answer{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ans, nil
}
