// Package config loads runtime configuration for the artgallery CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / -config, or $ARTGALLERY_CONFIG.
//  3. $ARTGALLERY_BASE_URL.
//  4. Command-line flags (-a, -s, -t, -l).
//
// # JSON schema
//
// Durations use timex.Duration, so "30s" and integer nanoseconds both work:
//
//	{
//	  "base_url": "http://localhost:8080",
//	  "session_db": "session.db",
//	  "session_ttl": "720h",
//	  "request_timeout": "0s",
//	  "verify_redirect_delay": "2s",
//	  "log_level": "info",
//	  "log_backend": "slog",
//	  "history_file": ".artgallery_history"
//	}
package config
