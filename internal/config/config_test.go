package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "HTTP_PORT", "LOG_LEVEL", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "GRAPHIQL", "SEED_DATA"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTPPort != "4000" {
		t.Fatalf("HTTPPort = %q, expected 4000", cfg.HTTPPort)
	}
	if cfg.AppEnv != "development" {
		t.Fatalf("AppEnv = %q, expected development", cfg.AppEnv)
	}
	if cfg.RequestTimeout != 20*time.Second {
		t.Fatalf("RequestTimeout = %s, expected 20s", cfg.RequestTimeout)
	}
	if !cfg.GraphiQL || !cfg.SeedData {
		t.Fatalf("expected GraphiQL and SeedData enabled by default, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("GRAPHIQL", "false")
	t.Setenv("SEED_DATA", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.AppEnv != "production" || cfg.HTTPPort != "8081" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("RequestTimeout = %s, expected 5s", cfg.RequestTimeout)
	}
	if cfg.GraphiQL || cfg.SeedData {
		t.Fatalf("expected GraphiQL and SeedData disabled, got %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "non-numeric port", key: "HTTP_PORT", val: "http"},
		{name: "port out of range", key: "HTTP_PORT", val: "70000"},
		{name: "negative request timeout", key: "REQUEST_TIMEOUT", val: "-1s"},
		{name: "zero shutdown timeout", key: "SHUTDOWN_TIMEOUT", val: "0s"},
		{name: "unparseable request timeout", key: "REQUEST_TIMEOUT", val: "banana"},
		{name: "unparseable shutdown timeout", key: "SHUTDOWN_TIMEOUT", val: "soon"},
		{name: "unparseable graphiql flag", key: "GRAPHIQL", val: "maybe"},
		{name: "unparseable seed flag", key: "SEED_DATA", val: "sometimes"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{"HTTP_PORT", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "GRAPHIQL", "SEED_DATA"} {
				t.Setenv(key, "")
			}
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.val)
			}
		})
	}
}

func TestLoadReportsEveryBadValue(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("REQUEST_TIMEOUT", "banana")
	t.Setenv("GRAPHIQL", "maybe")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for unparseable values")
	}
	for _, key := range []string{"REQUEST_TIMEOUT", "GRAPHIQL"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error %q does not mention %s", err, key)
		}
	}
}
