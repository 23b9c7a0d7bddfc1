package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/artgallery/internal/flagx"
	"github.com/dmitrijs2005/artgallery/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Every field is
// optional; pointer fields distinguish "absent" from the zero value so a
// partial file only overrides what it names.
type JsonConfig struct {
	BaseURL             *string         `json:"base_url"`
	SessionDB           *string         `json:"session_db"`
	SessionTTL          *timex.Duration `json:"session_ttl"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	VerifyRedirectDelay *timex.Duration `json:"verify_redirect_delay"`
	LogLevel            *string         `json:"log_level"`
	LogBackend          *string         `json:"log_backend"`
	HistoryFile         *string         `json:"history_file"`
}

// parseJson overlays cfg with the file named by -c/-config (or
// $ARTGALLERY_CONFIG). It panics on read or decode errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.SessionDB != nil {
		cfg.SessionDB = *jc.SessionDB
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.VerifyRedirectDelay != nil {
		cfg.VerifyRedirectDelay = jc.VerifyRedirectDelay.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogBackend != nil {
		cfg.LogBackend = *jc.LogBackend
	}
	if jc.HistoryFile != nil {
		cfg.HistoryFile = *jc.HistoryFile
	}
}
