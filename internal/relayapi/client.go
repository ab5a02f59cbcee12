// Package relayapi is the HTTP client for the relay management API. Every
// fetch is a single GET with a session cookie, a browser-like header set, and
// a bounded retry loop around upstream overload and connection failures.
package relayapi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/charmbracelet/log"

	"github.com/relaymeter/relaymeter/internal/schema"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxAttempts = 3
	defaultRetryDelay  = 2 * time.Second
	defaultUserID      = "1"

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
)

// FetchError is a failed fetch: a non-retryable HTTP status, exhausted
// retries, or an unparseable body. Status is 0 when the failure happened
// below the HTTP layer.
type FetchError struct {
	Endpoint string
	Status   int
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("relayapi: fetch %s: status %d after %d attempt(s): %v", e.Endpoint, e.Status, e.Attempts, e.Err)
	}
	return fmt.Sprintf("relayapi: fetch %s: %v after %d attempt(s)", e.Endpoint, e.Err, e.Attempts)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client issues requests against one relay instance. The session credential
// is supplied pre-obtained; the client attaches it as a cookie and does no
// authentication of its own.
type Client struct {
	BaseURL     string
	Session     string
	UserID      string
	HTTPClient  *http.Client
	MaxAttempts int
	RetryDelay  time.Duration
}

// NewClient returns a client with the production timeout and retry policy.
// The relay fronts show self-signed certificates, so verification is off.
func NewClient(baseURL, session string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Session: session,
		UserID:  defaultUserID,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		MaxAttempts: defaultMaxAttempts,
		RetryDelay:  defaultRetryDelay,
	}
}

// Fetch GETs endpoint with params serialized in declared order and returns
// the parsed JSON body. Retries are bounded and apply only to upstream
// overload (502) and connection-level failures; any other non-2xx status
// aborts immediately.
func (c *Client) Fetch(ctx context.Context, endpoint string, params []schema.Param) (any, error) {
	reqURL := c.BaseURL + endpoint + "?" + encodeParams(params)

	maxAttempts := c.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	var lastErr error
	var lastStatus int
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		log.Debug("relayapi: request", "url", reqURL, "attempt", attempt, "max", maxAttempts)

		doc, status, err := c.doOnce(ctx, reqURL, endpoint)
		if err == nil {
			return doc, nil
		}
		lastErr = err
		lastStatus = status

		if !shouldRetry(status, attempt, maxAttempts) {
			return nil, &FetchError{Endpoint: endpoint, Status: status, Attempts: attempt, Err: err}
		}

		log.Warn("relayapi: retrying", "endpoint", endpoint, "status", status, "delay", c.RetryDelay, "err", err)
		select {
		case <-time.After(c.RetryDelay):
		case <-ctx.Done():
			return nil, &FetchError{Endpoint: endpoint, Status: status, Attempts: attempt, Err: ctx.Err()}
		}
	}

	return nil, &FetchError{Endpoint: endpoint, Status: lastStatus, Attempts: maxAttempts, Err: lastErr}
}

// doOnce performs a single request. A zero status means the request never
// produced an HTTP response.
func (c *Client) doOnce(ctx context.Context, reqURL, endpoint string) (any, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req, endpoint)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, resp.StatusCode, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		// Malformed JSON from a 2xx is not transient; fail without retry.
		return nil, resp.StatusCode, fmt.Errorf("parsing response: %w", err)
	}
	return doc, resp.StatusCode, nil
}

func (c *Client) setHeaders(req *http.Request, endpoint string) {
	userID := c.UserID
	if userID == "" {
		userID = defaultUserID
	}

	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("New-API-User", userID)
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", c.refererFor(endpoint))
	req.AddCookie(&http.Cookie{Name: "session", Value: c.Session})
}

// refererFor mimics the console page each endpoint is fetched from.
func (c *Client) refererFor(endpoint string) string {
	page := "detail"
	switch endpoint {
	case "/token/":
		page = "token"
	case "/log/":
		page = "log"
	case "/channel/":
		page = "channel"
	case "/pricing":
		page = "pricing"
	}

	base := c.BaseURL
	if u, err := url.Parse(c.BaseURL); err == nil && u.Scheme != "" && u.Host != "" {
		base = u.Scheme + "://" + u.Host
	}
	return base + "/" + page
}

// encodeParams serializes params in declared order. url.Values would sort
// the keys, which breaks comparability with the console's requests.
func encodeParams(params []schema.Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
