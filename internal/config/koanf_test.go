// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// clearConfigEnv unsets every mapped variable for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()

	keys := []string{ConfigPathEnvVar}
	for key := range envMappings {
		keys = append(keys, strings.ToUpper(key))
	}
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Unsetenv(%s): %v", key, err)
		}
	}
}

// writeConfigFile writes content to a temp config.yaml and points CONFIG_PATH at it.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	return configPath
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Security.RateLimitReqs != 100 {
		t.Errorf("Security.RateLimitReqs = %d, want 100", cfg.Security.RateLimitReqs)
	}
	if cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("Security.RateLimitWindow = %v, want 1m", cfg.Security.RateLimitWindow)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("Catalog.Path = %q, want empty (built-in catalog)", cfg.Catalog.Path)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
	if cfg.Supervisor.FailureThreshold != 5.0 {
		t.Errorf("Supervisor.FailureThreshold = %v, want 5", cfg.Supervisor.FailureThreshold)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 5000}
	if got := s.Addr(); got != "127.0.0.1:5000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:5000", got)
	}
}

// TestEnvTransformFunc verifies environment variable name mapping
func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"HTTP_HOST", "server.host"},
		{"HTTP_SHUTDOWN_TIMEOUT", "server.shutdown_timeout"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"CATALOG_PATH", "catalog.path"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},
		{"SUPERVISOR_FAILURE_BACKOFF", "supervisor.failure_backoff"},
		{"HOME", ""},
		{"PATH", ""},
		{"RANDOM_VAR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	clearConfigEnv(t)

	t.Run("no config file exists", func(t *testing.T) {
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("server:\n  port: 1\n"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(configPath)

		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom_config.yaml")
		if err := os.WriteFile(customPath, []byte("server:\n  port: 1\n"), 0o600); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, customPath)

		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")

		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Chdir(t.TempDir())
	clearConfigEnv(t)

	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CATALOG_PATH", "/data/catalog.yaml")
	t.Setenv("CORS_ORIGINS", "https://shop.example.com, https://admin.example.com,")
	t.Setenv("DISABLE_RATE_LIMIT", "true")
	t.Setenv("RATE_LIMIT_REQUESTS", "0")
	t.Setenv("SUPERVISOR_FAILURE_BACKOFF", "2s")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Catalog.Path != "/data/catalog.yaml" {
		t.Errorf("Catalog.Path = %q, want /data/catalog.yaml", cfg.Catalog.Path)
	}
	wantOrigins := []string{"https://shop.example.com", "https://admin.example.com"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, wantOrigins) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}
	// Rate limit bounds are not checked when disabled.
	if !cfg.Security.RateLimitDisabled {
		t.Error("Security.RateLimitDisabled = false, want true")
	}
	if cfg.Supervisor.FailureBackoff != 2*time.Second {
		t.Errorf("Supervisor.FailureBackoff = %v, want 2s", cfg.Supervisor.FailureBackoff)
	}

	// Defaults are still applied for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s (default)", cfg.Server.Timeout)
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanfConfigFile(t *testing.T) {
	clearConfigEnv(t)
	writeConfigFile(t, `
server:
  port: 8888
  host: "127.0.0.1"

security:
  cors_origins:
    - "https://shop.example.com"
  rate_limit_window: 30s

catalog:
  path: "/etc/catalogrec/products.toml"

logging:
  level: "warn"
  format: "console"
`)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1", cfg.Server.Host)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"https://shop.example.com"}) {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("Security.RateLimitWindow = %v, want 30s", cfg.Security.RateLimitWindow)
	}
	if cfg.Catalog.Path != "/etc/catalogrec/products.toml" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v, want warn/console", cfg.Logging)
	}

	// Defaults are still applied for unset values
	if cfg.Security.RateLimitReqs != 100 {
		t.Errorf("Security.RateLimitReqs = %d, want 100 (default)", cfg.Security.RateLimitReqs)
	}
}

// TestLoadWithKoanfEnvOverridesFile tests that env vars override config file
func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	clearConfigEnv(t)
	writeConfigFile(t, `
server:
  port: 8888
  host: "127.0.0.1"

logging:
  level: "warn"
`)
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("CATALOG_PATH", "/custom/catalog.json")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	// From file, not overridden
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1 (from file)", cfg.Server.Host)
	}

	// Env overrides file
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env override)", cfg.Logging.Level)
	}

	// Env overrides default
	if cfg.Catalog.Path != "/custom/catalog.json" {
		t.Errorf("Catalog.Path = %q, want /custom/catalog.json (env override)", cfg.Catalog.Path)
	}
}

// TestLoadWithKoanfInvalidFile tests that a malformed config file is reported
func TestLoadWithKoanfInvalidFile(t *testing.T) {
	clearConfigEnv(t)
	configPath := writeConfigFile(t, "server: [unclosed\n")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("LoadWithKoanf() expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), configPath) {
		t.Errorf("error %q should name the config file", err.Error())
	}
}

// TestLoadWithKoanfValidation tests that validation runs after loading
func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		errMsg  string
	}{
		{
			name:    "port out of range",
			envVars: map[string]string{"HTTP_PORT": "70000"},
			errMsg:  "HTTP_PORT",
		},
		{
			name:    "zero port",
			envVars: map[string]string{"HTTP_PORT": "0"},
			errMsg:  "HTTP_PORT",
		},
		{
			name:    "non-positive timeout",
			envVars: map[string]string{"HTTP_TIMEOUT": "0s"},
			errMsg:  "HTTP_TIMEOUT",
		},
		{
			name:    "rate limit requests too low",
			envVars: map[string]string{"RATE_LIMIT_REQUESTS": "0"},
			errMsg:  "RATE_LIMIT_REQUESTS",
		},
		{
			name:    "rate limit window too short",
			envVars: map[string]string{"RATE_LIMIT_WINDOW": "100ms"},
			errMsg:  "RATE_LIMIT_WINDOW",
		},
		{
			name:    "invalid log level",
			envVars: map[string]string{"LOG_LEVEL": "verbose"},
			errMsg:  "LOG_LEVEL",
		},
		{
			name:    "invalid log format",
			envVars: map[string]string{"LOG_FORMAT": "xml"},
			errMsg:  "LOG_FORMAT",
		},
		{
			name:    "invalid supervisor threshold",
			envVars: map[string]string{"SUPERVISOR_FAILURE_THRESHOLD": "-1"},
			errMsg:  "SUPERVISOR_FAILURE_THRESHOLD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			clearConfigEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q should mention %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestValidate_Security(t *testing.T) {
	t.Parallel()

	t.Run("empty CORS origins", func(t *testing.T) {
		t.Parallel()

		cfg := defaultConfig()
		cfg.Security.CORSOrigins = nil
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "CORS_ORIGINS") {
			t.Errorf("Validate() = %v, want CORS_ORIGINS error", err)
		}
	})

	t.Run("wildcard detection", func(t *testing.T) {
		t.Parallel()

		cfg := defaultConfig()
		if !cfg.HasWildcardCORS() {
			t.Error("HasWildcardCORS() = false for default origins")
		}
		cfg.Security.CORSOrigins = []string{"https://shop.example.com"}
		if cfg.HasWildcardCORS() {
			t.Error("HasWildcardCORS() = true for explicit origins")
		}
	})
}
