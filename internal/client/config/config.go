package config

import (
	"os"
	"time"
)

// BaseURLEnv overrides the backend base URL between the JSON file and flags.
const BaseURLEnv = "ARTGALLERY_BASE_URL"

// Config holds runtime settings for the artgallery CLI.
//
// Fields:
//   - BaseURL: scheme://host[:port] of the storefront REST backend.
//   - SessionDB: SQLite file holding the session; ":memory:" keeps it in RAM.
//   - SessionTTL: lifetime of a stored userId.
//   - RequestTimeout: per-request deadline; 0 means none.
//   - VerifyRedirectDelay: pause before moving to login after verification.
//   - LogLevel / LogBackend: see logging.New.
//   - HistoryFile: REPL history; empty disables it.
type Config struct {
	BaseURL             string
	SessionDB           string
	SessionTTL          time.Duration
	RequestTimeout      time.Duration
	VerifyRedirectDelay time.Duration
	LogLevel            string
	LogBackend          string
	HistoryFile         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.SessionDB = "session.db"
	c.SessionTTL = 30 * 24 * time.Hour
	c.RequestTimeout = 0
	c.VerifyRedirectDelay = 2 * time.Second
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.HistoryFile = ""
}

// LoadConfig constructs a Config from defaults, then the JSON file (if any),
// then $ARTGALLERY_BASE_URL, then command-line flags. Later sources win.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}

func parseEnv(cfg *Config) {
	if v := os.Getenv(BaseURLEnv); v != "" {
		cfg.BaseURL = v
	}
}
