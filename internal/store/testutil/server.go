package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/kurumaya/storefront/internal/store/catalog"
	"github.com/kurumaya/storefront/internal/store/httpserver"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithCatalogService wires a custom catalog service implementation.
func WithCatalogService(service catalog.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.CatalogService = service
	}
}

// WithFeaturedCount overrides the home-page featured subset size.
func WithFeaturedCount(n int) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.FeaturedCount = n
	}
}

// NewServer constructs an httptest server running the storefront HTTP stack
// against the seeded catalog by default.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:        ":0",
		CatalogService: catalog.NewStaticService(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	srv := httpserver.New(cfg)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
