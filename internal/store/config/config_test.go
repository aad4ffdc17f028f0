package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("expected default address, got %q", cfg.Server.Address)
	}
	if cfg.CMS.BaseURL != "http://localhost:1337" {
		t.Errorf("expected local CMS default, got %q", cfg.CMS.BaseURL)
	}
	if cfg.Site.FeaturedCount != 4 {
		t.Errorf("expected default featured count, got %d", cfg.Site.FeaturedCount)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	payload := []byte("server:\n  address: \":9000\"\ncms:\n  base_url: https://cms.kurumaya.jp\n  timeout_seconds: 5\nsite:\n  featured_count: 6\n")
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Address != ":9000" {
		t.Errorf("expected yaml address, got %q", cfg.Server.Address)
	}
	if cfg.CMS.BaseURL != "https://cms.kurumaya.jp" {
		t.Errorf("expected yaml base url, got %q", cfg.CMS.BaseURL)
	}
	if cfg.CMS.Timeout().Seconds() != 5 {
		t.Errorf("expected 5s timeout, got %s", cfg.CMS.Timeout())
	}
	if cfg.Site.FeaturedCount != 6 {
		t.Errorf("expected featured count 6, got %d", cfg.Site.FeaturedCount)
	}
}

func TestLoadMissingFileIsNotFatal(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.CMS.BaseURL == "" {
		t.Error("defaults should still apply")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_HTTP_ADDR", ":7777")
	t.Setenv("CMS_BASE_URL", "http://cms.internal:1337")
	t.Setenv("CMS_DEMO", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Address != ":7777" {
		t.Errorf("expected env address, got %q", cfg.Server.Address)
	}
	if cfg.CMS.BaseURL != "http://cms.internal:1337" {
		t.Errorf("expected env base url, got %q", cfg.CMS.BaseURL)
	}
	if !cfg.CMS.Demo {
		t.Error("expected demo mode enabled")
	}
}

func TestInvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("CMS_TIMEOUT_SECONDS", "-3")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CMS.TimeoutSeconds != 10 {
		t.Errorf("non-positive timeout should fall back to default, got %d", cfg.CMS.TimeoutSeconds)
	}
}
