package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config holds the storefront runtime settings. Values come from, in order of
// precedence: environment variables, the optional YAML file, built-in
// defaults. A .env file in the working directory is loaded into the
// environment first.
type Config struct {
	Server ServerConfig `yaml:"server"`
	CMS    CMSConfig    `yaml:"cms"`
	Site   SiteConfig   `yaml:"site"`
}

type ServerConfig struct {
	Address string `yaml:"address"`
}

type CMSConfig struct {
	// BaseURL is the headless CMS origin. The default matches a locally
	// running Strapi instance.
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds bounds a single CMS request.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// Demo switches the storefront to the seeded in-process catalog, no CMS
	// required.
	Demo bool `yaml:"demo"`
}

type SiteConfig struct {
	// FeaturedCount is the size of the home-page featured subset.
	FeaturedCount int `yaml:"featured_count"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Server: ServerConfig{Address: ":8080"},
		CMS: CMSConfig{
			BaseURL:        "http://localhost:1337",
			TimeoutSeconds: 10,
		},
		Site: SiteConfig{FeaturedCount: 4},
	}
}

// Load builds the configuration. path names an optional YAML file; an empty
// path or a missing file is not an error.
func Load(path string) (Config, error) {
	// Best effort: local development keeps overrides in .env.
	_ = godotenv.Load()

	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.CMS.TimeoutSeconds <= 0 {
		cfg.CMS.TimeoutSeconds = Defaults().CMS.TimeoutSeconds
	}
	if cfg.Site.FeaturedCount <= 0 {
		cfg.Site.FeaturedCount = Defaults().Site.FeaturedCount
	}
	return cfg, nil
}

// Timeout returns the CMS request timeout as a duration.
func (c CMSConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("STOREFRONT_HTTP_ADDR"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("CMS_BASE_URL"); v != "" {
		cfg.CMS.BaseURL = v
	}
	if v := os.Getenv("CMS_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CMS.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("CMS_DEMO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.CMS.Demo = b
		}
	}
	if v := os.Getenv("STOREFRONT_FEATURED_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Site.FeaturedCount = n
		}
	}
}
