package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// ClickUp integration
	ClickUp  ClickUpConfig
	Contexts ContextsConfig
	Secrets  SecretsConfig
	Refs     RefsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ClickUpConfig struct {
	BaseURL           string
	ClientID          string
	ClientSecret      string
	CallbackPort      int
	RequestsPerMinute int
	HierarchyCacheTTL time.Duration
}

type ContextsConfig struct {
	// Dir is the shared context directory, also populated by other
	// integrations (filenames are prefix-namespaced).
	Dir string
}

type SecretsConfig struct {
	Path string
}

type RefsConfig struct {
	Path string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// ClickUp integration
	cfg.ClickUp.BaseURL = viper.GetString("clickup.base_url")
	cfg.ClickUp.ClientID = viper.GetString("clickup.client_id")
	cfg.ClickUp.ClientSecret = viper.GetString("clickup.client_secret")
	cfg.ClickUp.CallbackPort = viper.GetInt("clickup.callback_port")
	cfg.ClickUp.RequestsPerMinute = viper.GetInt("clickup.requests_per_minute")
	cfg.ClickUp.HierarchyCacheTTL = viper.GetDuration("clickup.hierarchy_cache_ttl")
	if clientID := viper.GetString("clickup_client_id"); clientID != "" {
		cfg.ClickUp.ClientID = clientID
	}
	if clientSecret := viper.GetString("clickup_client_secret"); clientSecret != "" {
		cfg.ClickUp.ClientSecret = clientSecret
	}

	cfg.Contexts.Dir = viper.GetString("contexts.dir")
	cfg.Secrets.Path = viper.GetString("secrets.path")
	cfg.Refs.Path = viper.GetString("refs.path")

	if err := cfg.applyHomeDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyHomeDefaults resolves path settings that default relative to the
// user's home directory.
func (cfg *Config) applyHomeDefaults() error {
	if cfg.Contexts.Dir != "" && cfg.Secrets.Path != "" && cfg.Refs.Path != "" {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot resolve home directory: %w", err)
	}
	base := filepath.Join(home, ".clickup-context")

	if cfg.Contexts.Dir == "" {
		cfg.Contexts.Dir = filepath.Join(base, "git-context")
	}
	if cfg.Secrets.Path == "" {
		cfg.Secrets.Path = filepath.Join(base, "secrets.json")
	}
	if cfg.Refs.Path == "" {
		cfg.Refs.Path = filepath.Join(base, "context-refs.json")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("clickup.base_url", "https://api.clickup.com/api/v2")
	viper.SetDefault("clickup.callback_port", 8642)
	viper.SetDefault("clickup.requests_per_minute", 100)
	viper.SetDefault("clickup.hierarchy_cache_ttl", "5m")
}
