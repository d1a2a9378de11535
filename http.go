package mdspan

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const defaultMaxFetchBytes = 8 << 20

// FetchRequest configures Fetch.
type FetchRequest struct {
	URL      string
	Client   *http.Client
	MaxBytes int64
}

// OpenURL issues a GET for an http(s) URL and returns the response body.
func OpenURL(ctx context.Context, client *http.Client, rawURL string) (io.ReadCloser, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("fetch: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, fmt.Errorf("fetch: unsupported scheme %q", httpReq.URL.Scheme)
	}
	httpReq.Header.Set("Accept", MediaType+", text/plain;q=0.9, */*;q=0.1")
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch: request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch: status %s", resp.Status)
	}
	return resp.Body, nil
}

// Fetch downloads inline Markdown over HTTP(S), validates it and parses it.
func Fetch(ctx context.Context, req FetchRequest) (ParseResult, error) {
	body, err := OpenURL(ctx, req.Client, req.URL)
	if err != nil {
		return ParseResult{}, err
	}
	defer body.Close()
	limit := req.MaxBytes
	if limit <= 0 {
		limit = defaultMaxFetchBytes
	}
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return ParseResult{}, fmt.Errorf("fetch: read: %w", err)
	}
	if int64(len(data)) > limit {
		return ParseResult{}, fmt.Errorf("fetch: body exceeds %d bytes", limit)
	}
	if err := ValidateInput(data); err != nil {
		return ParseResult{}, fmt.Errorf("fetch: %w", err)
	}
	return Parse(string(data)), nil
}
