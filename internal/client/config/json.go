package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// strings like "3s". Fields left out of the file keep their current value.
type JsonConfig struct {
	DBPath         *string `json:"db_path"`
	LogLevel       *string `json:"log_level"`
	LogFormat      *string `json:"log_format"`
	CatalogPath    *string `json:"catalog_path"`
	FragmentsDir   *string `json:"fragments_dir"`
	FragmentsURL   *string `json:"fragments_url"`
	FetchTimeout   *string `json:"fetch_timeout"`
	ViewportWidth  *int    `json:"viewport_width"`
	CurrencySymbol *string `json:"currency_symbol"`
	Locale         *string `json:"locale"`
}

// parseJSON overlays cfg with the values present in the JSON file at path.
func parseJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	setIf(&cfg.DBPath, jc.DBPath)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	setIf(&cfg.CatalogPath, jc.CatalogPath)
	setIf(&cfg.FragmentsDir, jc.FragmentsDir)
	setIf(&cfg.FragmentsURL, jc.FragmentsURL)
	setIf(&cfg.ViewportWidth, jc.ViewportWidth)
	setIf(&cfg.CurrencySymbol, jc.CurrencySymbol)
	setIf(&cfg.Locale, jc.Locale)

	if jc.FetchTimeout != nil {
		d, err := time.ParseDuration(*jc.FetchTimeout)
		if err != nil {
			return fmt.Errorf("failed to parse config file %s: fetch_timeout: %w", path, err)
		}
		cfg.FetchTimeout = d
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
