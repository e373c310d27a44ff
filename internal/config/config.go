package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	History HistoryConfig `mapstructure:"history"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the dictionary API location
type APIConfig struct {
	URL string `mapstructure:"url"` // Base URL, e.g. http://localhost:8080
}

// HistoryConfig controls the lookup history
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Size    int    `mapstructure:"size"` // Max remembered words
	File    string `mapstructure:"file"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			URL: "",
		},
		History: HistoryConfig{
			Enabled: true,
			Size:    50,
			File:    filepath.Join(defaultDataPath(), "history.db"),
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "lexi.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "lexi")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "lexi")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "lexi")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "lexi")
	}
}

// Loader reads and writes the configuration through one viper instance.
type Loader struct {
	v       *viper.Viper
	dir     string
	cfgFile string
}

// NewLoader creates a loader. cfgFile overrides the search path when set.
func NewLoader(cfgFile string) *Loader {
	return &Loader{v: viper.New(), dir: defaultConfigPath(), cfgFile: cfgFile}
}

// Load reads configuration from file and environment. A missing config file is
// not an error; defaults are used.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()
	v := l.v

	v.SetDefault("api.url", cfg.API.URL)
	v.SetDefault("history.enabled", cfg.History.Enabled)
	v.SetDefault("history.size", cfg.History.Size)
	v.SetDefault("history.file", cfg.History.File)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	if l.cfgFile != "" {
		v.SetConfigFile(l.cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(l.dir)
		v.AddConfigPath(".")
	}

	// Environment variable overrides: LEXI_API_URL, LEXI_LOGGING_LEVEL, ...
	v.SetEnvPrefix("LEXI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(l.cfgFile != "" && os.IsNotExist(err)) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.API.URL = strings.TrimRight(strings.TrimSpace(cfg.API.URL), "/")
	return cfg, nil
}

// Save writes cfg to the loader's config file (or config.yaml in the default
// config directory) and returns the path written.
func (l *Loader) Save(cfg *Config) (string, error) {
	configFile := l.cfgFile
	if configFile == "" {
		configFile = filepath.Join(l.dir, "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	l.v.Set("api.url", cfg.API.URL)
	l.v.Set("history.enabled", cfg.History.Enabled)
	l.v.Set("history.size", cfg.History.Size)
	l.v.Set("history.file", cfg.History.File)
	l.v.Set("logging.file", cfg.Logging.File)
	l.v.Set("logging.level", cfg.Logging.Level)

	if err := l.v.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}

// LoadConfig loads configuration from the default locations
func LoadConfig() (*Config, error) {
	return NewLoader("").Load()
}

// IsConfigured returns true if the API URL is set
func (c *Config) IsConfigured() bool {
	return c.API.URL != ""
}

// SaveConfig writes cfg to the default config location
func SaveConfig(cfg *Config) (string, error) {
	return NewLoader("").Save(cfg)
}
