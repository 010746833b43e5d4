// Package trefle is the client for the Trefle plant search API.
package trefle

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"plantcare/config"
	"plantcare/internal/domain/service"
	"plantcare/internal/errors"

	"github.com/sony/gobreaker"
)

const (
	searchPath             = "/api/v1/plants/search"
	defaultBreakerFailures = 5
	defaultBreakerTimeout  = 30 * time.Second
	breakerInterval        = time.Minute
	maxErrorBodyBytes      = 512
)

// ErrBreakerOpen is returned while the circuit is open and upstream calls are skipped.
var ErrBreakerOpen = gobreaker.ErrOpenState

type searchResponse struct {
	Data []json.RawMessage `json:"data"`
}

type client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient creates the Trefle search client. The outbound request has no client
// timeout of its own; the caller's context bounds it.
func NewClient(cfg *config.TrefleConfig, httpClient *http.Client, logger *slog.Logger) service.PlantLookup {
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = defaultBreakerFailures
	}
	timeout := cfg.BreakerTimeout
	if timeout <= 0 {
		timeout = defaultBreakerTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.Token == "" {
		logger.Warn("Trefle token is not configured, external searches will be rejected upstream")
	}

	st := gobreaker.Settings{
		Name:        "trefle",
		MaxRequests: 1,
		Interval:    breakerInterval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			// a caller giving up says nothing about upstream health
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker(st),
		logger:     logger,
	}
}

// Search queries the provider once, without retries.
func (c *client) Search(ctx context.Context, query string) ([]service.ExternalPlant, error) {
	res, err := c.cb.Execute(func() (interface{}, error) {
		return c.fetch(ctx, query)
	})
	if err != nil {
		return nil, err
	}

	return decodePlants(res.([]json.RawMessage))
}

func (c *client) fetch(ctx context.Context, query string) ([]json.RawMessage, error) {
	params := url.Values{}
	params.Set("token", c.token)
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build trefle request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "trefle request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, errors.Errorf("trefle returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode trefle response")
	}

	return payload.Data, nil
}

// decodePlants maps raw provider records, keeping each record's original payload.
func decodePlants(raws []json.RawMessage) ([]service.ExternalPlant, error) {
	plants := make([]service.ExternalPlant, 0, len(raws))
	for _, raw := range raws {
		var plant service.ExternalPlant
		if err := json.Unmarshal(raw, &plant); err != nil {
			return nil, errors.Wrap(err, "failed to decode trefle plant")
		}
		plant.Raw = raw
		plants = append(plants, plant)
	}

	return plants, nil
}
