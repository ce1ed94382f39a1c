package config

import "github.com/spf13/pflag"

// Flag names shared by every storefront command.
const (
	FlagConfig       = "config"
	FlagDB           = "db"
	FlagLogLevel     = "log-level"
	FlagLogFormat    = "log-format"
	FlagCatalog      = "catalog"
	FlagFragmentsDir = "fragments-dir"
	FlagFragmentsURL = "fragments-url"
	FlagFetchTimeout = "fetch-timeout"
	FlagViewport     = "viewport-width"
)

// Flags holds flag values until LoadConfig decides which of them the user
// actually set.
type Flags struct {
	fs         *pflag.FlagSet
	configFile string
	v          Config
}

// RegisterFlags defines the storefront flags on fs (typically a cobra
// command's persistent flags), with defaults shown in help.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	var d Config
	d.LoadDefaults()
	f := &Flags{fs: fs}

	fs.StringVarP(&f.configFile, FlagConfig, "c", "", "path to a JSON config file")
	fs.StringVar(&f.v.DBPath, FlagDB, d.DBPath, "path to the local store (SQLite)")
	fs.StringVar(&f.v.LogLevel, FlagLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&f.v.LogFormat, FlagLogFormat, d.LogFormat, "log format: text or json")
	fs.StringVar(&f.v.CatalogPath, FlagCatalog, d.CatalogPath, "product catalog YAML (built-in when empty)")
	fs.StringVar(&f.v.FragmentsDir, FlagFragmentsDir, d.FragmentsDir, "directory with navbar.html and footer.html")
	fs.StringVar(&f.v.FragmentsURL, FlagFragmentsURL, d.FragmentsURL, "base URL to fetch navbar.html and footer.html from")
	fs.DurationVar(&f.v.FetchTimeout, FlagFetchTimeout, d.FetchTimeout, "timeout for each fragment fetch")
	fs.IntVar(&f.v.ViewportWidth, FlagViewport, d.ViewportWidth, "simulated viewport width in CSS pixels")
	return f
}

// ConfigFile is the --config value.
func (f *Flags) ConfigFile() string {
	if f == nil {
		return ""
	}
	return f.configFile
}

// apply copies the flags the user set onto cfg.
func (f *Flags) apply(cfg *Config) {
	if f == nil || f.fs == nil {
		return
	}
	changed := f.fs.Changed
	if changed(FlagDB) {
		cfg.DBPath = f.v.DBPath
	}
	if changed(FlagLogLevel) {
		cfg.LogLevel = f.v.LogLevel
	}
	if changed(FlagLogFormat) {
		cfg.LogFormat = f.v.LogFormat
	}
	if changed(FlagCatalog) {
		cfg.CatalogPath = f.v.CatalogPath
	}
	if changed(FlagFragmentsDir) {
		cfg.FragmentsDir = f.v.FragmentsDir
	}
	if changed(FlagFragmentsURL) {
		cfg.FragmentsURL = f.v.FragmentsURL
	}
	if changed(FlagFetchTimeout) {
		cfg.FetchTimeout = f.v.FetchTimeout
	}
	if changed(FlagViewport) {
		cfg.ViewportWidth = f.v.ViewportWidth
	}
}
