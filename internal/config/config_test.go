package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.DBPath != "./data/carwash.db" {
		t.Errorf("expected default DB path, got %q", cfg.DBPath)
	}
	if cfg.CatalogDir != "" {
		t.Errorf("expected empty catalog dir, got %q", cfg.CatalogDir)
	}
	if cfg.TokenDuration != 24*time.Hour {
		t.Errorf("expected 24h token duration, got %v", cfg.TokenDuration)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %q", cfg.LogLevel)
	}
	if !cfg.MetricsEnabled {
		t.Error("expected metrics enabled by default")
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.Addr())
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/quotes.db")
	t.Setenv("TOKEN_DURATION", "90m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.DBPath != "/tmp/quotes.db" {
		t.Errorf("expected DB path from env, got %q", cfg.DBPath)
	}
	if cfg.TokenDuration != 90*time.Minute {
		t.Errorf("expected 90m, got %v", cfg.TokenDuration)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %q", cfg.LogLevel)
	}
	if cfg.MetricsEnabled {
		t.Error("expected metrics disabled")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Cleanup(func() { os.Unsetenv("CATALOG_DIR") })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("CATALOG_DIR=/etc/carwash/catalogs\nJWT_SECRET=ignored\n"), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.CatalogDir != "/etc/carwash/catalogs" {
		t.Errorf("expected catalog dir from env file, got %q", cfg.CatalogDir)
	}
	// The environment takes precedence over the file
	if cfg.JWTSecret != "test-secret" {
		t.Errorf("expected secret from environment, got %q", cfg.JWTSecret)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		if !errors.Is(err, ErrMissingSecret) {
			t.Errorf("expected ErrMissingSecret, got %v", err)
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("PORT", "70000")

		if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
			t.Error("expected error for out of range port")
		}
	})
}
