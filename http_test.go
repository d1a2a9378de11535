package mdspan

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newMarkdownServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept"), MediaType) {
			http.Error(w, "missing accept", http.StatusNotAcceptable)
			return
		}
		w.Header().Set("Content-Type", MediaType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchParsesBody(t *testing.T) {
	srv := newMarkdownServer(t, http.StatusOK, "fetched *text*")
	res, err := Fetch(context.Background(), FetchRequest{URL: srv.URL, Client: srv.Client()})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if Debug(res) != "fetched {i}text{/i}" {
		t.Fatalf("unexpected result %q", Debug(res))
	}
}

func TestFetchRejectsErrorStatus(t *testing.T) {
	srv := newMarkdownServer(t, http.StatusNotFound, "nope")
	_, err := Fetch(context.Background(), FetchRequest{URL: srv.URL, Client: srv.Client()})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	srv := newMarkdownServer(t, http.StatusOK, strings.Repeat("x", 64))
	_, err := Fetch(context.Background(), FetchRequest{URL: srv.URL, Client: srv.Client(), MaxBytes: 16})
	if err == nil || !strings.Contains(err.Error(), "exceeds 16 bytes") {
		t.Fatalf("expected size error, got %v", err)
	}
}

func TestFetchRejectsBinaryBody(t *testing.T) {
	srv := newMarkdownServer(t, http.StatusOK, "bin\x00ary")
	_, err := Fetch(context.Background(), FetchRequest{URL: srv.URL, Client: srv.Client()})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestOpenURLRejectsBadInput(t *testing.T) {
	if _, err := OpenURL(context.Background(), nil, ""); err == nil {
		t.Fatalf("expected error for empty URL")
	}
	if _, err := OpenURL(context.Background(), nil, "ftp://example.com/a.md"); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
}

func TestFetchHonorsContext(t *testing.T) {
	srv := newMarkdownServer(t, http.StatusOK, "x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Fetch(ctx, FetchRequest{URL: srv.URL, Client: srv.Client()}); err == nil {
		t.Fatalf("expected canceled context to fail")
	}
}
