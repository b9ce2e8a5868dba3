package types

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Config validation errors.
var (
	ErrDataDirEmpty    = errors.New("data directory must not be empty")
	ErrPortOutOfRange  = errors.New("port must be between 1 and 65535")
	ErrUploadSizeLimit = errors.New("max upload size must be positive")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// Configuration defaults.
const (
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 8000
	DefaultDataDir        = ".zavod-db"
	DefaultMaxUploadBytes = 5 << 20 // 5 MiB
	DefaultLogLevel       = "info"
)

// knownLogLevels lists the zerolog level names Validate accepts.
var knownLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config holds the server and storage parameters.
type Config struct {
	Host           string `json:"host" yaml:"host"`
	Port           int    `json:"port" yaml:"port"`
	DataDir        string `json:"data_dir" yaml:"data_dir"`
	UploadDir      string `json:"upload_dir" yaml:"upload_dir"`
	MaxUploadBytes int64  `json:"max_upload_bytes" yaml:"max_upload_bytes"`
	LogLevel       string `json:"log_level" yaml:"log_level"`
}

// Addr returns the host:port pair the HTTP server binds to.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Uploads returns the configured upload directory, defaulting to
// "<data_dir>/uploads" when unset.
func (c Config) Uploads() string {
	if c.UploadDir != "" {
		return c.UploadDir
	}
	return filepath.Join(c.DataDir, "uploads")
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.Port < 1 || c.Port > 65535 {
		return ErrPortOutOfRange
	}
	if c.MaxUploadBytes <= 0 {
		return ErrUploadSizeLimit
	}
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
