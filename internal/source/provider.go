package source

import (
	"context"
	"net/http"
	"time"
)

// Provider fetches the raw text of a settings source
type Provider interface {
	// Type returns the provider identifier (e.g., "github", "http", "file")
	Type() string

	// Fetch returns the raw content of src
	Fetch(ctx context.Context, src string, opts FetchOptions) ([]byte, error)

	// CanHandle returns true if this provider can handle the given source
	CanHandle(src string) bool
}

// FetchOptions configures a fetch
type FetchOptions struct {
	Timeout time.Duration     // zero means no timeout beyond ctx
	Headers map[string]string // extra HTTP request headers
	Client  *http.Client      // nil means http.DefaultClient
}

// providers is the registry of available providers
var providers = make(map[string]Provider)

// detectOrder is the order DetectProvider tries providers in; the more
// specific ones come first
var detectOrder = []string{"github", "http", "file"}

// RegisterProvider adds a provider to the registry
func RegisterProvider(p Provider) {
	providers[p.Type()] = p
}

// GetProvider returns a provider by type
func GetProvider(providerType string) Provider {
	return providers[providerType]
}

// DetectProvider auto-selects provider based on the source string
func DetectProvider(src string) Provider {
	for _, name := range detectOrder {
		if p, ok := providers[name]; ok && p.CanHandle(src) {
			return p
		}
	}
	return nil
}
