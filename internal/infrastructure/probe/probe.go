// Package probe checks whether external URLs answer and relays ad-hoc
// requests on behalf of dashboard widgets.
package probe

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
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/rs/zerolog"

	"github.com/dashgrid/dashgrid-api/internal/api/metrics"
)

const (
	defaultTimeout  = 5 * time.Second
	defaultCacheTTL = time.Minute
	maxBodyBytes    = 1 << 20

	// MsgUnknownMethod is returned for request types other than GET, POST and PUT.
	MsgUnknownMethod = "Something went wrong"
)

// Result is the outcome of a reachability check.
type Result struct {
	Status int  `json:"status"`
	Active bool `json:"active"`
}

// RequestInput describes a relayed request. Headers, Body and Params hold
// JSON objects as received on the query string.
type RequestInput struct {
	URL     string
	Type    string
	Headers string
	Body    string
	Params  string
}

// RequestResult carries the upstream status and body, or 500 and the error text.
type RequestResult struct {
	Status   int    `json:"status"`
	Response string `json:"response"`
}

// Prober performs outbound HTTP checks. Reachability results are cached
// per URL in bigcache.
type Prober struct {
	client *http.Client
	cache  *bigcache.BigCache
	log    zerolog.Logger
}

// New returns a Prober. Non-positive values fall back to package defaults.
func New(timeout, cacheTTL time.Duration, log zerolog.Logger) (*Prober, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	cfg := bigcache.DefaultConfig(cacheTTL)
	cfg.CleanWindow = cacheTTL
	cfg.Verbose = false
	cache, err := bigcache.NewBigCache(cfg)
	if err != nil {
		return nil, fmt.Errorf("probe: init cache: %w", err)
	}
	return &Prober{
		client: &http.Client{Timeout: timeout},
		cache:  cache,
		log:    log,
	}, nil
}

// Close releases the cache.
func (p *Prober) Close() error {
	return p.cache.Close()
}

// TestURL issues a GET against target. Any transport failure or status of
// 400 and above reports {500, false}; only a 200 counts as active.
func (p *Prober) TestURL(ctx context.Context, target string) Result {
	if cached, err := p.cache.Get(target); err == nil {
		if status, err := strconv.Atoi(string(cached)); err == nil {
			metrics.ProbeCacheTotal.WithLabelValues("hit").Inc()
			return Result{Status: status, Active: status == http.StatusOK}
		}
	}
	metrics.ProbeCacheTotal.WithLabelValues("miss").Inc()

	status, _, err := p.do(ctx, http.MethodGet, target, nil, nil)
	if err != nil {
		p.log.Debug().Err(err).Str("url", target).Msg("url probe failed")
		status = http.StatusInternalServerError
	}
	if err := p.cache.Set(target, []byte(strconv.Itoa(status))); err != nil {
		p.log.Warn().Err(err).Msg("probe cache write failed")
	}
	return Result{Status: status, Active: status == http.StatusOK}
}

// Request relays a GET, POST or PUT. GET encodes Params as query values,
// POST and PUT send Body as JSON.
func (p *Prober) Request(ctx context.Context, in RequestInput) RequestResult {
	headers, err := decodeObject(in.Headers)
	if err != nil {
		return failed(err)
	}

	var (
		status int
		body   string
	)
	switch in.Type {
	case http.MethodGet:
		params, err := decodeObject(in.Params)
		if err != nil {
			return failed(err)
		}
		target, err := withQuery(in.URL, params)
		if err != nil {
			return failed(err)
		}
		status, body, err = p.do(ctx, http.MethodGet, target, headers, nil)
		if err != nil {
			return failed(err)
		}
	case http.MethodPost, http.MethodPut:
		payload, err := jsonPayload(in.Body)
		if err != nil {
			return failed(err)
		}
		status, body, err = p.do(ctx, in.Type, in.URL, headers, payload)
		if err != nil {
			return failed(err)
		}
	default:
		return RequestResult{Status: http.StatusInternalServerError, Response: MsgUnknownMethod}
	}
	return RequestResult{Status: status, Response: body}
}

func (p *Prober) do(ctx context.Context, method, target string, headers map[string]any, payload []byte) (int, string, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, "", err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, fmt.Sprint(v))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return 0, "", &StatusError{Code: resp.StatusCode}
	}
	return resp.StatusCode, string(raw), nil
}

// StatusError reports an upstream response with a 4xx or 5xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTPError: Response code %d (%s)", e.Code, http.StatusText(e.Code))
}

func failed(err error) RequestResult {
	return RequestResult{Status: http.StatusInternalServerError, Response: err.Error()}
}

func decodeObject(raw string) (map[string]any, error) {
	if raw == "" {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.New("expected a JSON object")
	}
	return out, nil
}

func jsonPayload(raw string) ([]byte, error) {
	if raw == "" {
		return []byte("{}"), nil
	}
	if !json.Valid([]byte(raw)) {
		var v any
		return nil, json.Unmarshal([]byte(raw), &v)
	}
	return []byte(raw), nil
}

func withQuery(target string, params map[string]any) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, fmt.Sprint(v))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
