package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalPath(t *testing.T) {
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if origXDG != "" {
			_ = os.Setenv("XDG_CONFIG_HOME", origXDG)
		} else {
			_ = os.Unsetenv("XDG_CONFIG_HOME")
		}
	}()

	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		_ = os.Setenv("XDG_CONFIG_HOME", "/custom/config")
		got := GlobalPath()
		want := "/custom/config/tapfolio/tapfolio.yml"
		if got != want {
			t.Errorf("GlobalPath() = %v, want %v", got, want)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		_ = os.Unsetenv("XDG_CONFIG_HOME")
		got := GlobalPath()
		if !filepath.IsAbs(got) {
			t.Errorf("GlobalPath() should return absolute path, got %v", got)
		}
		if filepath.Base(got) != "tapfolio.yml" {
			t.Errorf("GlobalPath() should end with tapfolio.yml, got %v", got)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	// Point XDG at an empty dir so no real config leaks into the test
	_ = os.Setenv("XDG_CONFIG_HOME", t.TempDir())
	defer func() { _ = os.Unsetenv("XDG_CONFIG_HOME") }()
	_ = os.Unsetenv("TAPFOLIO_BACKEND_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BackendURL != "" {
		t.Errorf("expected empty backend_url by default, got %q", cfg.BackendURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log_level info, got %q", cfg.LogLevel)
	}
	if cfg.TokenFile == "" {
		t.Error("expected a default token_file path")
	}
	if err := cfg.RequireBackendURL(); err == nil {
		t.Error("RequireBackendURL should fail when backend_url is unset")
	}
}

func TestLoadFromEnv(t *testing.T) {
	_ = os.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_ = os.Setenv("TAPFOLIO_BACKEND_URL", "https://api.example.com/")
	defer func() {
		_ = os.Unsetenv("XDG_CONFIG_HOME")
		_ = os.Unsetenv("TAPFOLIO_BACKEND_URL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Trailing slash is stripped so endpoint joins stay clean
	if cfg.BackendURL != "https://api.example.com" {
		t.Errorf("expected trimmed backend_url, got %q", cfg.BackendURL)
	}
	if err := cfg.RequireBackendURL(); err != nil {
		t.Errorf("RequireBackendURL failed: %v", err)
	}
}

func TestWriteGlobal(t *testing.T) {
	_ = os.Setenv("XDG_CONFIG_HOME", t.TempDir())
	defer func() { _ = os.Unsetenv("XDG_CONFIG_HOME") }()

	cfg := &Config{BackendURL: "https://cards.example.com", LogLevel: "debug"}
	if err := WriteGlobal(cfg); err != nil {
		t.Fatalf("WriteGlobal failed: %v", err)
	}

	if !Exists() {
		t.Error("Exists() should be true after WriteGlobal")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.BackendURL != "https://cards.example.com" {
		t.Errorf("expected round-tripped backend_url, got %q", loaded.BackendURL)
	}
}
