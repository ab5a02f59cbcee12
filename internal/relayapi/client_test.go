package relayapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/relaymeter/relaymeter/internal/schema"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		BaseURL:     srv.URL,
		Session:     "test-session",
		UserID:      "1",
		HTTPClient:  srv.Client(),
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
	}
}

func TestFetch_RetriesBadGateway(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"data": [{"model_name": "gpt-4o"}]}`))
	}))
	defer srv.Close()

	doc, err := testClient(srv).Fetch(context.Background(), "/data/", nil)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("doc type = %T, want map", doc)
	}
	if _, ok := m["data"]; !ok {
		t.Fatal("parsed doc missing data key")
	}
}

func TestFetch_ExhaustsRetries(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv).Fetch(context.Background(), "/data/", nil)
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("err type = %T, want *FetchError", err)
	}
	if fe.Status != http.StatusBadGateway || fe.Attempts != 3 {
		t.Fatalf("FetchError = %+v, want status 502 attempts 3", fe)
	}
}

func TestFetch_NonRetryableStatusAbortsImmediately(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient(srv).Fetch(context.Background(), "/token/", nil)
	if err == nil {
		t.Fatal("expected error for 401")
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want 1", attempts)
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("err type = %T, want *FetchError", err)
	}
	if fe.Status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", fe.Status)
	}
}

func TestFetch_MalformedJSONFailsWithoutRetry(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := testClient(srv).Fetch(context.Background(), "/data/", nil)
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want 1", attempts)
	}
}

func TestFetch_ParamOrderAndHeaders(t *testing.T) {
	var gotQuery, gotReferer, gotUser string
	var gotCookie *http.Cookie
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotReferer = r.Header.Get("Referer")
		gotUser = r.Header.Get("New-API-User")
		gotCookie, _ = r.Cookie("session")
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	params := []schema.Param{
		{Key: "username", Value: ""},
		{Key: "default_time", Value: "hour"},
		{Key: "start_timestamp", Value: "1700000000"},
		{Key: "end_timestamp", Value: "1700086400"},
	}
	if _, err := testClient(srv).Fetch(context.Background(), "/data/", params); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	want := "username=&default_time=hour&start_timestamp=1700000000&end_timestamp=1700086400"
	if gotQuery != want {
		t.Fatalf("query = %q, want %q", gotQuery, want)
	}
	if gotReferer != srv.URL+"/detail" {
		t.Fatalf("referer = %q, want %q", gotReferer, srv.URL+"/detail")
	}
	if gotUser != "1" {
		t.Fatalf("New-API-User = %q, want 1", gotUser)
	}
	if gotCookie == nil || gotCookie.Value != "test-session" {
		t.Fatalf("session cookie = %v, want test-session", gotCookie)
	}
}

func TestRefererFor_PerEndpointPages(t *testing.T) {
	c := &Client{BaseURL: "https://relay.example.com/api"}
	cases := map[string]string{
		"/data/":    "https://relay.example.com/detail",
		"/token/":   "https://relay.example.com/token",
		"/log/":     "https://relay.example.com/log",
		"/channel/": "https://relay.example.com/channel",
		"/pricing":  "https://relay.example.com/pricing",
		"/user/":    "https://relay.example.com/detail",
	}
	for endpoint, want := range cases {
		if got := c.refererFor(endpoint); got != want {
			t.Errorf("refererFor(%q) = %q, want %q", endpoint, got, want)
		}
	}
}

func TestShouldRetry(t *testing.T) {
	cases := []struct {
		status, attempt, max int
		want                 bool
	}{
		{0, 1, 3, true},
		{http.StatusBadGateway, 1, 3, true},
		{http.StatusBadGateway, 2, 3, true},
		{http.StatusBadGateway, 3, 3, false},
		{http.StatusUnauthorized, 1, 3, false},
		{http.StatusNotFound, 1, 3, false},
		{http.StatusInternalServerError, 1, 3, false},
	}
	for _, tc := range cases {
		if got := shouldRetry(tc.status, tc.attempt, tc.max); got != tc.want {
			t.Errorf("shouldRetry(%d, %d, %d) = %v, want %v", tc.status, tc.attempt, tc.max, got, tc.want)
		}
	}
}
