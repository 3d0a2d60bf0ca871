package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("ENV")
	os.Unsetenv("API_BASE_URL")
	os.Unsetenv("AUTH_MODE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8600" {
		t.Errorf("expected default port 8600, got %s", cfg.Port)
	}
	if cfg.APIBaseURL != "http://localhost:8600" {
		t.Errorf("expected default API base URL, got %s", cfg.APIBaseURL)
	}
	if cfg.ResolvedAuthMode() != "none" {
		t.Errorf("expected auth mode none in development, got %s", cfg.ResolvedAuthMode())
	}
}

func TestLoad_TokenModeRequiresSecret(t *testing.T) {
	os.Setenv("ENV", "production")
	os.Unsetenv("AUTH_SECRET")
	defer os.Unsetenv("ENV")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when AUTH_SECRET is missing in token mode")
	}
}

func TestLoad_TokenModeWithSecret(t *testing.T) {
	os.Setenv("ENV", "production")
	os.Setenv("AUTH_SECRET", "test-secret")
	defer os.Unsetenv("ENV")
	defer os.Unsetenv("AUTH_SECRET")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ResolvedAuthMode() != "token" {
		t.Errorf("expected auth mode token, got %s", cfg.ResolvedAuthMode())
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}
