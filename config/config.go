// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	// EnvPrefix prefixes every environment variable read by the CLI.
	EnvPrefix = "AZURE_CDN"
	// ConfigEnvPath is the key, and with EnvPrefix the environment variable,
	// naming the config file.
	ConfigEnvPath = "config"

	defaultConfigDir  = ".azure-cdn"
	defaultConfigFile = "config.json"
)

// Output formats accepted in Config.Output.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the CLI configuration. Keys match the json tags in the config file
// and, upper-cased with EnvPrefix, the environment.
type Config struct {
	LogLevel      string `json:"LogLevel"`
	LogPath       string `json:"LogPath"`
	LogMaxSizeMB  int    `json:"LogMaxSizeMB"`
	LogMaxBackups int    `json:"LogMaxBackups"`
	Output        string `json:"Output"`
	Subscription  string `json:"Subscription"`
}

// DefaultConfig is used when no config file is found.
var DefaultConfig = Config{
	LogLevel:      "warn",
	LogMaxSizeMB:  10,
	LogMaxBackups: 5,
	Output:        OutputJSON,
}

// GetConfigPath returns the default config file location under the user's
// home directory.
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultConfigFile
	}
	return filepath.Join(home, defaultConfigDir, defaultConfigFile)
}

// Validate checks the log level, the output format and the rotation limits.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log level %q", c.LogLevel)
	}
	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return errors.Wrapf(ErrInvalidConfig, "output %q must be %s or %s", c.Output, OutputJSON, OutputYAML)
	}
	if c.LogMaxSizeMB < 0 || c.LogMaxBackups < 0 {
		return errors.Wrap(ErrInvalidConfig, "log rotation limits must not be negative")
	}
	return nil
}

// NewViper returns a viper instance reading AZURE_CDN_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, key := range []string{"LogLevel", "LogPath", "LogMaxSizeMB", "LogMaxBackups", "Output", "Subscription"} {
		_ = v.BindEnv(key)
	}
	return v
}

// Load reads the config file named by ConfigEnvPath, or the default path, into
// v. When the file cannot be read DefaultConfig is loaded instead. It reports
// which file was used, empty for the defaults.
func Load(v *viper.Viper) (Config, string, error) {
	var cfg Config
	if cfgFile := v.GetString(ConfigEnvPath); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigFile(GetConfigPath())
	}

	used := ""
	if err := v.ReadInConfig(); err == nil {
		used = v.ConfigFileUsed()
	} else {
		b, err := json.Marshal(DefaultConfig)
		if err != nil {
			return cfg, "", errors.Wrap(err, "failed to marshal default config")
		}
		v.SetConfigType("json")
		if err := v.ReadConfig(bytes.NewBuffer(b)); err != nil {
			return cfg, "", errors.Wrap(err, "failed to read default config")
		}
	}

	cfg = Config{
		LogLevel:      v.GetString("LogLevel"),
		LogPath:       v.GetString("LogPath"),
		LogMaxSizeMB:  v.GetInt("LogMaxSizeMB"),
		LogMaxBackups: v.GetInt("LogMaxBackups"),
		Output:        v.GetString("Output"),
		Subscription:  v.GetString("Subscription"),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultConfig.LogLevel
	}
	if cfg.Output == "" {
		cfg.Output = DefaultConfig.Output
	}
	return cfg, used, nil
}
