package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the storefront shell.
//
// Units: FetchTimeout bounds each fragment fetch; ViewportWidth is in CSS
// pixels and decides whether dropdowns open on tap.
type Config struct {
	DBPath         string        `env:"DB"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogFormat      string        `env:"LOG_FORMAT"`
	CatalogPath    string        `env:"CATALOG"`
	FragmentsDir   string        `env:"FRAGMENTS_DIR"`
	FragmentsURL   string        `env:"FRAGMENTS_URL"`
	FetchTimeout   time.Duration `env:"FETCH_TIMEOUT"`
	ViewportWidth  int           `env:"VIEWPORT_WIDTH"`
	CurrencySymbol string        `env:"CURRENCY_SYMBOL"`
	Locale         string        `env:"LOCALE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "storefront.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.CatalogPath = ""
	c.FragmentsDir = ""
	c.FragmentsURL = ""
	c.FetchTimeout = 5 * time.Second
	c.ViewportWidth = 1280
	c.CurrencySymbol = "₹"
	c.Locale = "en"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the JSON file named by --config (if any), STOREFRONT_* environment
// variables and finally flags the user set explicitly. Later sources take
// precedence over earlier ones.
func LoadConfig(f *Flags) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := f.ConfigFile(); path != "" {
		if err := parseJSON(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	f.apply(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: want text or json", c.LogFormat)
	}
	if c.FragmentsDir != "" && c.FragmentsURL != "" {
		return fmt.Errorf("fragments dir and fragments url are mutually exclusive")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.FetchTimeout)
	}
	return nil
}
