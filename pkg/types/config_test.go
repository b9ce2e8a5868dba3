package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Host:           DefaultHost,
		Port:           DefaultPort,
		DataDir:        ".zavod-db",
		MaxUploadBytes: DefaultMaxUploadBytes,
		LogLevel:       "info",
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty log level allowed", mutate: func(c *Config) { c.LogLevel = "" }},
		{name: "empty data dir", mutate: func(c *Config) { c.DataDir = "" }, wantErr: ErrDataDirEmpty},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, wantErr: ErrPortOutOfRange},
		{name: "port too big", mutate: func(c *Config) { c.Port = 70000 }, wantErr: ErrPortOutOfRange},
		{name: "zero upload cap", mutate: func(c *Config) { c.MaxUploadBytes = 0 }, wantErr: ErrUploadSizeLimit},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: ErrLogLevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfigUploads(t *testing.T) {
	c := Config{DataDir: "data"}
	assert.Equal(t, "data/uploads", c.Uploads())

	c.UploadDir = "/srv/uploads"
	assert.Equal(t, "/srv/uploads", c.Uploads())
}

func TestConfigAddr(t *testing.T) {
	c := Config{Host: "127.0.0.1", Port: 8000}
	assert.Equal(t, "127.0.0.1:8000", c.Addr())
}
