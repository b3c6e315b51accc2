package dub

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFileAndEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dub.yaml")
	body := "token: file_token\nworkspace_id: ws_file\nbase_url: https://api.example.com\ntimeout: 5s\nheaders:\n  X-Team: links\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(EnvToken, "")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvWorkspaceID, "ws_env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Token != "file_token" {
		t.Fatalf("expected file token, got %q", cfg.Token)
	}
	if cfg.WorkspaceID != "ws_env" {
		t.Fatalf("expected env workspace to win, got %q", cfg.WorkspaceID)
	}
	if cfg.BaseURL != "https://api.example.com" || cfg.Timeout != 5*time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.DefaultHeaders["X-Team"] != "links" {
		t.Fatalf("expected headers from file, got %+v", cfg.DefaultHeaders)
	}
}

func TestConfigFromEnvPrefersToken(t *testing.T) {
	t.Setenv(EnvToken, "tok")
	t.Setenv(EnvAPIKey, "key")
	t.Setenv(EnvWorkspaceID, "")
	t.Setenv(EnvBaseURL, "")
	if got := ConfigFromEnv().Token; got != "tok" {
		t.Fatalf("expected DUB_TOKEN, got %q", got)
	}
	t.Setenv(EnvToken, "")
	if got := ConfigFromEnv().Token; got != "key" {
		t.Fatalf("expected DUB_API_KEY fallback, got %q", got)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("token: [unterminated"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
