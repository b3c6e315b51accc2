package dub

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ConfigFromEnv and LoadConfig.
const (
	EnvToken       = "DUB_TOKEN"
	EnvAPIKey      = "DUB_API_KEY"
	EnvWorkspaceID = "DUB_WORKSPACE_ID"
	EnvBaseURL     = "DUB_BASE_URL"
)

// FileConfig is the on-disk form of Config.
type FileConfig struct {
	Token       string            `yaml:"token"`
	WorkspaceID string            `yaml:"workspace_id"`
	BaseURL     string            `yaml:"base_url"`
	UserAgent   string            `yaml:"user_agent"`
	Timeout     time.Duration     `yaml:"timeout"`
	Headers     map[string]string `yaml:"headers"`
}

// Config converts the file form into a client Config.
func (f FileConfig) Config() Config {
	return Config{
		Token:          f.Token,
		WorkspaceID:    f.WorkspaceID,
		BaseURL:        f.BaseURL,
		UserAgent:      f.UserAgent,
		Timeout:        f.Timeout,
		DefaultHeaders: f.Headers,
	}
}

// LoadConfig reads a YAML config file and overlays the DUB_* environment
// variables on top of it. An empty path reads the environment only.
func LoadConfig(path string) (Config, error) {
	var fc FileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("dub: read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("dub: parse config %s: %w", path, err)
		}
	}
	cfg := fc.Config()
	overlayEnv(&cfg)
	return cfg, nil
}

// ConfigFromEnv builds a Config from DUB_TOKEN (or DUB_API_KEY),
// DUB_WORKSPACE_ID and DUB_BASE_URL.
func ConfigFromEnv() Config {
	var cfg Config
	overlayEnv(&cfg)
	return cfg
}

func overlayEnv(cfg *Config) {
	if v := firstEnv(EnvToken, EnvAPIKey); v != "" {
		cfg.Token = v
	}
	if v := firstEnv(EnvWorkspaceID); v != "" {
		cfg.WorkspaceID = v
	}
	if v := firstEnv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
