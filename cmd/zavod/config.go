// Config loading for the zavod CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ShalunBdk/ZavodHelper/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyHost           = "host"
	cfgKeyPort           = "port"
	cfgKeyDataDir        = "data_dir"
	cfgKeyUploadDir      = "upload_dir"
	cfgKeyMaxUploadBytes = "max_upload_bytes"
	cfgKeyLogLevel       = "log_level"
)

// defaultConfigDirName is used when --config-dir is not given.
const defaultConfigDirName = ".zavod"

// loadConfig reads config.yaml from the config directory using Viper, with
// defaults for every key and ZAVOD_* environment overrides. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (types.Config, error) {
	if configDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return types.Config{}, fmt.Errorf("resolve working directory: %w", err)
		}
		configDir = filepath.Join(cwd, defaultConfigDirName)
	}

	v := viper.New()
	v.SetDefault(cfgKeyHost, types.DefaultHost)
	v.SetDefault(cfgKeyPort, types.DefaultPort)
	v.SetDefault(cfgKeyDataDir, types.DefaultDataDir)
	v.SetDefault(cfgKeyUploadDir, "")
	v.SetDefault(cfgKeyMaxUploadBytes, int64(types.DefaultMaxUploadBytes))
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)

	v.SetEnvPrefix("ZAVOD")
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return types.Config{
		Host:           v.GetString(cfgKeyHost),
		Port:           v.GetInt(cfgKeyPort),
		DataDir:        v.GetString(cfgKeyDataDir),
		UploadDir:      v.GetString(cfgKeyUploadDir),
		MaxUploadBytes: v.GetInt64(cfgKeyMaxUploadBytes),
		LogLevel:       v.GetString(cfgKeyLogLevel),
	}, nil
}
