package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DefaultProvider   string                    `yaml:"default_provider" mapstructure:"default_provider"`
	DefaultModel      string                    `yaml:"default_model" mapstructure:"default_model"`
	FallbackModel     string                    `yaml:"fallback_model" mapstructure:"fallback_model"`
	ImageModel        string                    `yaml:"image_model" mapstructure:"image_model"`
	Providers         map[string]ProviderConfig `yaml:"providers" mapstructure:"providers"`
	DataDir           string                    `yaml:"data_dir" mapstructure:"data_dir"`
	LogLevel          string                    `yaml:"log_level" mapstructure:"log_level"`
	MaxChatTokens     int                       `yaml:"max_chat_tokens" mapstructure:"max_chat_tokens"`
	IdeasPerRequest   int                       `yaml:"ideas_per_request" mapstructure:"ideas_per_request"`
	DefaultDifficulty string                    `yaml:"default_difficulty" mapstructure:"default_difficulty"`
}

type ProviderConfig struct {
	Type    string `yaml:"type" mapstructure:"type"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	APIKey  string `yaml:"api_key" mapstructure:"api_key"`
	Model   string `yaml:"model" mapstructure:"model"`
}

var envVarRe = regexp.MustCompile(`\$([A-Z_][A-Z0-9_]*)`)

func expandEnv(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "$")
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}

func DefaultConfig() *Config {
	return &Config{
		DefaultProvider:   "google",
		DefaultModel:      "gemini-2.5-flash",
		FallbackModel:     "gemini-2.5-flash-lite",
		ImageModel:        "gemini-2.5-flash-image",
		DataDir:           defaultDataDir(),
		LogLevel:          "info",
		MaxChatTokens:     100000,
		IdeasPerRequest:   5,
		DefaultDifficulty: "intermediate",
		Providers: map[string]ProviderConfig{
			"google": {Type: "google", APIKey: "$GEMINI_API_KEY"},
			"ollama": {Type: "openai", BaseURL: "http://localhost:11434/v1"},
		},
	}
}

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "mlmuse")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "mlmuse")
}

// ConfigDir is where config.yaml and profile.yaml live.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mlmuse")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mlmuse")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths
	viper.AddConfigPath(".")
	viper.AddConfigPath(ConfigDir())

	// Environment variables
	viper.SetEnvPrefix("MLMUSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Manual expansion for keys in config file
	for name, p := range cfg.Providers {
		p.APIKey = expandEnv(p.APIKey)
		p.BaseURL = expandEnv(p.BaseURL)
		cfg.Providers[name] = p
	}
	cfg.DataDir = expandEnv(cfg.DataDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) ProviderFor(name string) (ProviderConfig, bool) {
	p, ok := c.Providers[name]
	return p, ok
}

// SavedPath is where a file in the data directory lives.
func (c *Config) SavedPath(file string) string {
	return filepath.Join(c.DataDir, file)
}

// LogPath is the application log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "mlmuse.log")
}

// SessionsDir holds saved chat transcripts.
func (c *Config) SessionsDir() string {
	return filepath.Join(c.DataDir, "sessions")
}

// ProfilePath is the student profile file.
func (c *Config) ProfilePath() string {
	return filepath.Join(ConfigDir(), "profile.yaml")
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultProvider == "" {
		return fmt.Errorf("config: default_provider is required")
	}
	if _, ok := c.Providers[c.DefaultProvider]; !ok {
		return fmt.Errorf("config: default_provider %q not found in providers", c.DefaultProvider)
	}
	for name, p := range c.Providers {
		validTypes := map[string]bool{"openai": true, "anthropic": true, "google": true}
		if !validTypes[p.Type] {
			return fmt.Errorf("config: provider %q has invalid type %q (must be openai, anthropic, or google)", name, p.Type)
		}
		if p.Type == "openai" && p.BaseURL == "" {
			return fmt.Errorf("config: provider %q (type openai) requires base_url", name)
		}
	}
	switch c.DefaultDifficulty {
	case "beginner", "intermediate", "advanced":
	default:
		return fmt.Errorf("config: default_difficulty %q (must be beginner, intermediate, or advanced)", c.DefaultDifficulty)
	}
	if c.MaxChatTokens < 1 {
		c.MaxChatTokens = 100000
	}
	if c.IdeasPerRequest < 1 {
		c.IdeasPerRequest = 5
	}
	return nil
}
