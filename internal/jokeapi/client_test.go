package jokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

const atomsPayload = `{
	"error": false,
	"category": "Science",
	"type": "twopart",
	"setup": "Why don't scientists trust atoms?",
	"delivery": "Because they make up everything!",
	"flags": {"nsfw": false, "religious": false, "political": false, "racist": false, "sexist": false, "explicit": false},
	"id": 1,
	"safe": true,
	"lang": "en"
}`

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultEndpoint+"/" {
		t.Fatalf("url = %q, want %q", u.String(), DefaultEndpoint+"/")
	}

	u, err = parseBaseURL("example.com:1234/api?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Path != "/api/" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL(http://) returned nil error, want missing host")
	}
}

func TestClient_FetchRandomDecodesPayloadAndSetsHeaders(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotQuery url.Values
	var gotHeader http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotHeader = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(atomsPayload))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, WithBlacklist("NSFW", "bogus", " explicit "))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	raw, err := c.FetchRandom(ctx)
	if err != nil {
		t.Fatalf("FetchRandom returned error: %v", err)
	}
	if raw.Setup != "Why don't scientists trust atoms?" || raw.Delivery != "Because they make up everything!" || raw.Category != "Science" {
		t.Fatalf("FetchRandom payload = %#v", raw)
	}
	if raw.Type != "twopart" || raw.ID != 1 || !raw.Safe || raw.Lang != "en" {
		t.Fatalf("FetchRandom metadata = %#v", raw)
	}

	if gotPath != "/joke/Any" {
		t.Fatalf("path = %q, want /joke/Any", gotPath)
	}
	if gotQuery.Get("type") != "twopart" {
		t.Fatalf("type = %q, want twopart", gotQuery.Get("type"))
	}
	if gotQuery.Get("blacklistFlags") != "nsfw,explicit" {
		t.Fatalf("blacklistFlags = %q, want nsfw,explicit", gotQuery.Get("blacklistFlags"))
	}
	if !strings.HasPrefix(gotHeader.Get("User-Agent"), "chuckle/") {
		t.Fatalf("User-Agent = %q, want chuckle/*", gotHeader.Get("User-Agent"))
	}
	if gotHeader.Get("Accept") != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotHeader.Get("Accept"))
	}
	if _, err := uuid.Parse(gotHeader.Get("X-Request-ID")); err != nil {
		t.Fatalf("X-Request-ID = %q, want uuid: %v", gotHeader.Get("X-Request-ID"), err)
	}
}

func TestClient_CategoryAndBasePath(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(atomsPayload))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/v2", WithCategory("Programming"), WithUserAgent("tester/1"))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchRandom(context.Background()); err != nil {
		t.Fatalf("FetchRandom returned error: %v", err)
	}
	if gotPath != "/v2/joke/Programming" {
		t.Fatalf("path = %q, want /v2/joke/Programming", gotPath)
	}
}

func TestClient_StatusAndDecodeErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/broken/joke/Any":
			_, _ = w.Write([]byte("{not-json"))
		case "/null/joke/Any":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("null"))
		case "/list/joke/Any":
			_, _ = w.Write([]byte(`[{"setup": "s", "delivery": "d"}]`))
		case "/down/joke/Any":
			http.Error(w, "nope", http.StatusInternalServerError)
		case "/inband/joke/Any":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"error": true, "message": "No matching joke found", "additionalInfo": "Try other filters"}`))
		case "/limited/joke/Any":
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": true, "message": "Too many requests"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	fetch := func(prefix string) error {
		t.Helper()
		c, err := NewClient(server.URL + prefix)
		if err != nil {
			t.Fatalf("NewClient returned error: %v", err)
		}
		_, err = c.FetchRandom(context.Background())
		return err
	}

	var decodeErr *DecodeError
	if err := fetch("/broken"); !errors.As(err, &decodeErr) || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("broken body error = %v, want *DecodeError", err)
	}

	for _, prefix := range []string{"/null", "/list"} {
		err := fetch(prefix)
		if !errors.As(err, &decodeErr) || !errors.Is(err, errNotObject) {
			t.Fatalf("%s body error = %v, want *DecodeError wrapping errNotObject", prefix, err)
		}
	}

	var statusErr *StatusError
	err := fetch("/down")
	if !errors.As(err, &statusErr) || statusErr.StatusCode != 500 {
		t.Fatalf("500 error = %v, want *StatusError 500", err)
	}
	if err.Error() != "HTTP 500 Internal Server Error" {
		t.Fatalf("500 message = %q", err.Error())
	}
	if !statusErr.Temporary() {
		t.Fatalf("500 Temporary() = false, want true")
	}

	err = fetch("/inband")
	if !errors.As(err, &statusErr) || statusErr.StatusCode != 200 {
		t.Fatalf("in-band error = %v, want *StatusError 200", err)
	}
	if statusErr.Message != "No matching joke found - Try other filters" {
		t.Fatalf("in-band message = %q", statusErr.Message)
	}
	if statusErr.Temporary() {
		t.Fatalf("in-band Temporary() = true, want false")
	}

	err = fetch("/limited")
	if !errors.As(err, &statusErr) || !statusErr.Temporary() {
		t.Fatalf("429 error = %v, want temporary *StatusError", err)
	}
	if !strings.HasPrefix(err.Error(), "HTTP 429 Too Many Requests: Too many requests") {
		t.Fatalf("429 message = %q", err.Error())
	}
}

func TestClient_UnreachableIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	c, err := NewClient(endpoint)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchRandom(context.Background())
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("FetchRandom error = %v, want *TransportError", err)
	}
	if !strings.HasPrefix(err.Error(), "execute request:") {
		t.Fatalf("error = %q, want execute request prefix", err.Error())
	}
}

func TestClient_CanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	_, err = c.FetchRandom(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("FetchRandom error = %v, want context.Canceled", err)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchRandom(context.Background()); err == nil {
		t.Fatalf("FetchRandom on nil client returned nil error")
	}
}
