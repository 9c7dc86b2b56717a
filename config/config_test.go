package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Ollama.URL != "http://localhost:11434" || cfg.Ollama.Model != "gpt-oss:20b" {
		t.Errorf("unexpected ollama defaults: %+v", cfg.Ollama)
	}
	if cfg.Ollama.Timeout != 60*time.Second {
		t.Errorf("expected 60s timeout, got %s", cfg.Ollama.Timeout)
	}
	if cfg.Ollama.Temperature != 0.1 || cfg.Ollama.NumPredict != 200 {
		t.Errorf("unexpected sampling defaults: %+v", cfg.Ollama)
	}
	if cfg.Auth.APIKey != DefaultAPIKey {
		t.Errorf("expected default api key, got %q", cfg.Auth.APIKey)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("unexpected cors origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OLLAMA_URL", "http://gpu-box:11434")
	t.Setenv("OLLAMA_MODEL", "llama3:8b")
	t.Setenv("API_KEY", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/lt")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Ollama.URL != "http://gpu-box:11434" {
		t.Errorf("OLLAMA_URL not applied: %q", cfg.Ollama.URL)
	}
	if cfg.Ollama.Model != "llama3:8b" {
		t.Errorf("OLLAMA_MODEL not applied: %q", cfg.Ollama.Model)
	}
	if cfg.Auth.APIKey != "s3cret" {
		t.Errorf("API_KEY not applied: %q", cfg.Auth.APIKey)
	}
	if cfg.Postgres.DSN != "postgres://u:p@db:5432/lt" {
		t.Errorf("DATABASE_URL not applied: %q", cfg.Postgres.DSN)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected cors origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]any
	}{
		{name: "bad port", set: map[string]any{"http_server.port": 70000}},
		{name: "empty model", set: map[string]any{"ollama.model": ""}},
		{name: "temperature too high", set: map[string]any{"ollama.temperature": 3.5}},
		{name: "empty api key", set: map[string]any{"auth.api_key": ""}},
		{name: "default key in production", set: map[string]any{"environment.name": "production"}},
		{name: "rate limit without rate", set: map[string]any{"rate_limit.requests_per_min": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			if _, err := load(v); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"a, b", " ", "c"})
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("unexpected result: %v", got)
	}
}
