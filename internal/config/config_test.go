package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %s", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS default, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitRPS != 5 {
		t.Fatalf("expected default rate limit, got %f", cfg.RateLimitRPS)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected default shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("READ_TIMEOUT", "5s")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("expected trimmed CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Fatalf("expected rate override, got %f", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 10 {
		t.Fatalf("expected burst override, got %d", cfg.RateLimitBurst)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("expected read timeout override, got %s", cfg.ReadTimeout)
	}
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "lots")
	t.Setenv("RATE_LIMIT_BURST", "many")
	t.Setenv("READ_TIMEOUT", "soon")
	cfg := Load()
	if cfg.RateLimitRPS != 5 {
		t.Fatalf("expected default rate on bad value, got %f", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 20 {
		t.Fatalf("expected default burst on bad value, got %d", cfg.RateLimitBurst)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Fatalf("expected default read timeout on bad value, got %s", cfg.ReadTimeout)
	}
}
