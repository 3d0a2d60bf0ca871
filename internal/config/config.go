package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string        `mapstructure:"PORT"`
	Env         string        `mapstructure:"ENV"`
	APIBaseURL  string        `mapstructure:"API_BASE_URL"`
	APIToken    string        `mapstructure:"API_TOKEN"`
	HTTPTimeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
	AuthMode    string        `mapstructure:"AUTH_MODE"`
	AuthSecret  string        `mapstructure:"AUTH_SECRET"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8600")
	v.SetDefault("ENV", "development")
	v.SetDefault("API_BASE_URL", "http://localhost:8600")
	v.SetDefault("HTTP_TIMEOUT", "15s")
	v.SetDefault("AUTH_MODE", "") // auto-detect: "" -> inferred from ENV

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("API_BASE_URL")
	v.BindEnv("API_TOKEN")
	v.BindEnv("HTTP_TIMEOUT")
	v.BindEnv("AUTH_MODE")
	v.BindEnv("AUTH_SECRET")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDev returns true when the module runs in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ResolvedAuthMode returns the effective auth mode for the mock backend. If
// AUTH_MODE is explicitly set, it is returned. Otherwise:
//   - ENV=development → "none" (no auth)
//   - otherwise       → "token" (HMAC bearer tokens, AUTH_SECRET required)
func (c *Config) ResolvedAuthMode() string {
	if c.AuthMode != "" {
		return c.AuthMode
	}
	if c.IsDev() {
		return "none"
	}
	return "token"
}

// Validate checks that the configuration is safe to run. Outside development
// the mock backend refuses to start without a signing secret.
func (c *Config) Validate() error {
	mode := c.ResolvedAuthMode()
	if mode != "none" && mode != "token" {
		return fmt.Errorf("AUTH_MODE must be \"none\" or \"token\", got %q", mode)
	}
	if mode == "token" && c.AuthSecret == "" {
		return fmt.Errorf("AUTH_SECRET must be set when AUTH_MODE is \"token\" (current ENV=%q)", c.Env)
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	return nil
}
