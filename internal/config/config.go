package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the skylark dispatch tool.
type Config struct {
	ListenAddr      string
	DecisionLogPath string
	Data            DataConfig
	Log             LogConfig
}

// DataConfig names the sheet exports the catalog loads from.
type DataConfig struct {
	Pilots   string
	Drones   string
	Missions string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from the config file and environment
// variables. Search order: SKYLARK_CONFIG_PATH, then /etc/skylark and the
// working directory. A missing file is fine - defaults plus SKYLARK_*
// environment variables apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", "127.0.0.1:8000")
	v.SetDefault("decision_log_path", "skylark_decisions.db")
	v.SetDefault("data.pilots", "")
	v.SetDefault("data.drones", "")
	v.SetDefault("data.missions", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/skylark")
	v.AddConfigPath(".")

	if configPath := os.Getenv("SKYLARK_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("SKYLARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		ListenAddr:      v.GetString("listen_addr"),
		DecisionLogPath: v.GetString("decision_log_path"),
		Data: DataConfig{
			Pilots:   v.GetString("data.pilots"),
			Drones:   v.GetString("data.drones"),
			Missions: v.GetString("data.missions"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.ListenAddr == "" {
		return fmt.Errorf("listen_addr is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	return nil
}
