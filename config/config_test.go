package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("HTTPServer.Port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.JWT.TTL != 24*time.Hour {
		t.Errorf("JWT.TTL = %s, want 24h", cfg.JWT.TTL)
	}
	if cfg.I18n.DefaultLocale != "ko-KR" {
		t.Errorf("I18n.DefaultLocale = %q, want ko-KR", cfg.I18n.DefaultLocale)
	}
	if cfg.Auth.LoginRateLimitPerMin != 10 {
		t.Errorf("Auth.LoginRateLimitPerMin = %d, want 10", cfg.Auth.LoginRateLimitPerMin)
	}
	if len(cfg.HTTPServer.TrustedProxies) != 0 {
		t.Errorf("HTTPServer.TrustedProxies = %v, want none", cfg.HTTPServer.TrustedProxies)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("I18N_DEFAULT_LOCALE", "en-US")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("HTTP_SERVER_TRUSTED_PROXIES", "10.0.0.0/8 172.16.0.1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("HTTPServer.Port = %d, want 9090", cfg.HTTPServer.Port)
	}
	if cfg.I18n.DefaultLocale != "en-US" {
		t.Errorf("I18n.DefaultLocale = %q, want en-US", cfg.I18n.DefaultLocale)
	}
	if cfg.JWT.TTL != 30*time.Minute {
		t.Errorf("JWT.TTL = %s, want 30m", cfg.JWT.TTL)
	}
	if got := cfg.HTTPServer.TrustedProxies; len(got) != 2 || got[0] != "10.0.0.0/8" || got[1] != "172.16.0.1" {
		t.Errorf("HTTPServer.TrustedProxies = %v, want [10.0.0.0/8 172.16.0.1]", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"missing secret", Config{JWT: JWTConfig{TTL: time.Hour}}, true},
		{"zero ttl", Config{JWT: JWTConfig{SecretKey: "k"}}, true},
		{"weak admin password", Config{JWT: JWTConfig{SecretKey: "k", TTL: time.Hour}, Admin: AdminConfig{Email: "a@b.c", Password: "short"}}, true},
		{"ok", Config{JWT: JWTConfig{SecretKey: "k", TTL: time.Hour}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
