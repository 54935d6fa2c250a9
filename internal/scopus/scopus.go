// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scopus verifies whether a journal title is currently indexed
// in the Scopus citation database via the Elsevier serial-title API.
//
// See docs/ARCHITECTURE § Index Verification.
package scopus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/thefledgedhurricane/journal-quality/internal/httputil"
	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

// serialTitleBase is the Elsevier serial-title endpoint. Declared as a
// var so tests can substitute an httptest server.
var serialTitleBase = "https://api.elsevier.com/content/serial/title"

// IndexServiceError reports a failed verification call: a transport
// failure, a non-2xx status, or an unparseable body. Callers recover
// from it locally by recording "not indexed" and moving on; it never
// aborts a batch.
type IndexServiceError struct {
	Title      string
	StatusCode int
	Err        error
}

func (e *IndexServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("scopus verification for %q: HTTP %d", e.Title, e.StatusCode)
	}
	return fmt.Sprintf("scopus verification for %q: %v", e.Title, e.Err)
}

func (e *IndexServiceError) Unwrap() error { return e.Err }

// Client queries the Scopus serial-title API. Construct it with
// NewClient; a client is only built when an API key is present, so the
// pipeline never calls the service with an empty credential.
type Client struct {
	client     *http.Client
	apiKey     string
	userAgent  string
	policy     *Policy
	maxRetries int
}

// NewClient returns a verifier for the given configuration. Zero-value
// settings fall back to defaults (10 s timeout, 500 ms minimum interval).
func NewClient(cfg types.ScopusConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	interval := cfg.MinInterval
	if interval == 0 {
		interval = DefaultMinInterval
	}
	return &Client{
		client:     &http.Client{Timeout: timeout},
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		policy:     NewPolicy(interval),
		maxRetries: cfg.MaxRetries,
	}
}

// serialResponse mirrors the slice of the Elsevier response we consume:
// a non-empty entry list means the title is indexed.
type serialResponse struct {
	SerialMetadataResponse struct {
		Entry []json.RawMessage `json:"entry"`
	} `json:"serial-metadata-response"`
}

// Verify reports whether title is indexed in Scopus. The rate policy is
// consulted before every call, including the first. A non-2xx response
// or transport failure yields a *IndexServiceError.
func (c *Client) Verify(ctx context.Context, title string) (bool, error) {
	if err := c.policy.Wait(ctx); err != nil {
		return false, &IndexServiceError{Title: title, Err: err}
	}

	params := url.Values{
		"title": {title},
		"view":  {"STANDARD"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serialTitleBase+"?"+params.Encode(), nil)
	if err != nil {
		return false, &IndexServiceError{Title: title, Err: err}
	}
	req.Header.Set("X-ELS-APIKey", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.client, req, c.maxRetries)
	if err != nil {
		return false, &IndexServiceError{Title: title, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &IndexServiceError{Title: title, StatusCode: resp.StatusCode}
	}

	var sr serialResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return false, &IndexServiceError{Title: title, Err: fmt.Errorf("parsing response: %w", err)}
	}

	return len(sr.SerialMetadataResponse.Entry) > 0, nil
}
