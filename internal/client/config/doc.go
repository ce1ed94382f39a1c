// Package config loads runtime configuration for the storefront shell.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or --config.
//  3. Environment variables prefixed with STOREFRONT_ (e.g. STOREFRONT_DB).
//  4. Command-line flags the user set explicitly.
//
// # JSON schema
//
// Every key is optional; durations are strings:
//
//	{
//	  "db_path": "storefront.db",
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "catalog_path": "catalog.yaml",
//	  "fragments_dir": "components",
//	  "fetch_timeout": "3s",
//	  "viewport_width": 375,
//	  "currency_symbol": "₹",
//	  "locale": "en"
//	}
package config
