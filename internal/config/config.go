package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

const configName = "vidplayer"

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", "./data")
	v.SetDefault("db_path", ":memory:")
	v.SetDefault("catalog_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("random_seed", 0)
	v.SetDefault("prompt", "> ")
}

// LoadConfig reads settings from the environment and, when present, a
// vidplayer.toml in DATA_DIR or the working directory. Environment wins.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath(v.GetString("data_dir"))
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		DataDir:      v.GetString("data_dir"),
		DatabasePath: v.GetString("db_path"),
		CatalogFile:  v.GetString("catalog_file"),
		LogLevel:     strings.ToLower(v.GetString("log_level")),
		RandomSeed:   v.GetInt64("random_seed"),
		Prompt:       v.GetString("prompt"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.DatabasePath != ":memory:" {
		_ = os.MkdirAll(cfg.DataDir, 0o755)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if _, err := c.SlogLevel(); err != nil {
		result = multierror.Append(result, err)
	}
	if c.RandomSeed < 0 {
		result = multierror.Append(result, ErrConfig("RANDOM_SEED must not be negative"))
	}
	if c.Prompt == "" {
		result = multierror.Append(result, ErrConfig("PROMPT must not be empty"))
	}
	if c.DatabasePath == "" {
		result = multierror.Append(result, ErrConfig("DB_PATH required"))
	}
	return result.ErrorOrNil()
}

func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, ErrConfig(fmt.Sprintf("unknown LOG_LEVEL %q", c.LogLevel))
}

type ErrConfig string

func (e ErrConfig) Error() string { return string(e) }
