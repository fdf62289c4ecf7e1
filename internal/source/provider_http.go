package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/samhoang/claco/internal/logging"
)

// maxFetchSize bounds the accepted response body; larger bodies are rejected
var maxFetchSize int64 = 10 << 20

// HTTPProvider fetches settings from a plain http(s) URL
type HTTPProvider struct{}

func init() {
	RegisterProvider(&HTTPProvider{})
}

func (p *HTTPProvider) Type() string {
	return "http"
}

func (p *HTTPProvider) CanHandle(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func (p *HTTPProvider) Fetch(ctx context.Context, src string, opts FetchOptions) ([]byte, error) {
	return httpGet(ctx, src, src, opts)
}

// httpGet downloads url; src is the name reported in errors
func httpGet(ctx context.Context, src, url string, opts FetchOptions) ([]byte, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &SourceError{Op: "http fetch", Source: src, Err: err}
	}

	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}

	logging.Debug("fetching settings", "url", url)
	resp, err := client.Do(req)
	if err != nil {
		return nil, &SourceError{Op: "http fetch", Source: src, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &SourceError{Op: "http fetch", Source: src,
			Err: fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchSize+1))
	if err != nil {
		return nil, &SourceError{Op: "http read", Source: src, Err: err}
	}
	if int64(len(data)) > maxFetchSize {
		return nil, &SourceError{Op: "http read", Source: src,
			Err: fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, maxFetchSize)}
	}

	return data, nil
}
