package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/glance/internal/gemini"
)

// isolate points the config directory at a temp dir and clears env vars that
// Load reads.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{
		"GLANCE_API_KEY", "GLANCE_MODEL", "GLANCE_MODE", "GLANCE_FORMAT", "GLANCE_PRESET",
		"GLANCE_PRIVACY_REDACT_SECRETS", "GLANCE_LOG_LEVEL", "GEMINI_API_KEY", "GOOGLE_API_KEY",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Model != gemini.DefaultModel {
		t.Errorf("Default model = %q, want %q", cfg.Model, gemini.DefaultModel)
	}
	if cfg.Endpoint != gemini.DefaultEndpoint {
		t.Errorf("Default endpoint = %q, want %q", cfg.Endpoint, gemini.DefaultEndpoint)
	}
	if cfg.Preset != "web" {
		t.Errorf("Default preset = %q, want %q", cfg.Preset, "web")
	}
	if cfg.Mode != "modal" {
		t.Errorf("Default mode = %q, want %q", cfg.Mode, "modal")
	}
	if !cfg.Privacy.RedactSecrets {
		t.Error("Default redactSecrets should be true")
	}
	if cfg.APIKey != "" {
		t.Error("Default config must not carry a key")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Model != Default().Model || cfg.Server.Addr != Default().Server.Addr {
		t.Errorf("Load without sources = %+v", cfg)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "glance", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	file := "model: file-model\npreset: spring\nformat: json\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(file), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GLANCE_MODEL", "env-model")
	t.Setenv("GLANCE_LOG_LEVEL", "error")

	cfg, err := Load(map[string]string{"format": "raw", "preset": ""})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Model != "env-model" {
		t.Errorf("Model = %q, want env over file", cfg.Model)
	}
	if cfg.Preset != "spring" {
		t.Errorf("Preset = %q, want file value (empty override ignored)", cfg.Preset)
	}
	if cfg.Format != "raw" {
		t.Errorf("Format = %q, want override over file", cfg.Format)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want nested env over file", cfg.Log.Level)
	}
}

func TestLoad_BoolOverride(t *testing.T) {
	isolate(t)
	cfg, err := Load(map[string]string{"privacy.redact_secrets": "false"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Privacy.RedactSecrets {
		t.Error("RedactSecrets should be false after override")
	}
}

func TestLoad_CredentialFallback(t *testing.T) {
	isolate(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.APIKey != "google-key" {
		t.Errorf("APIKey = %q, want GOOGLE_API_KEY fallback", cfg.APIKey)
	}

	t.Setenv("GEMINI_API_KEY", "gemini-key")
	cfg, _ = Load(nil)
	if cfg.APIKey != "gemini-key" {
		t.Errorf("APIKey = %q, want GEMINI_API_KEY before GOOGLE_API_KEY", cfg.APIKey)
	}

	t.Setenv("GLANCE_API_KEY", "glance-key")
	cfg, _ = Load(nil)
	if cfg.APIKey != "glance-key" {
		t.Errorf("APIKey = %q, want GLANCE_API_KEY first", cfg.APIKey)
	}
}

func TestLoad_InvalidMode(t *testing.T) {
	isolate(t)
	if _, err := Load(map[string]string{"mode": "popup"}); err == nil {
		t.Error("Expected error for invalid mode")
	}
}

func TestLoad_BadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "glance", "config.yaml")
	os.MkdirAll(filepath.Dir(path), 0o755)
	os.WriteFile(path, []byte("model: [unterminated\n"), 0o600)

	if _, err := Load(nil); err == nil {
		t.Error("Expected error for malformed config file")
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()
	tests := []struct {
		key   string
		value string
	}{
		{"api_key", "k"},
		{"model", "gemini-2.0-flash"},
		{"preset", "web-ko"},
		{"prompt", "Be brief."},
		{"mode", "inline"},
		{"format", "json"},
		{"privacy.redact_secrets", "false"},
		{"privacy.redact_paths", "**/.env, *.pem"},
		{"log.level", "debug"},
		{"server.addr", "localhost:9000"},
	}
	for _, tt := range tests {
		if err := SetField(&cfg, tt.key, tt.value); err != nil {
			t.Errorf("SetField(%q, %q) error: %v", tt.key, tt.value, err)
		}
	}
	if cfg.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Privacy.RedactSecrets {
		t.Error("RedactSecrets should be false")
	}
	if len(cfg.Privacy.RedactPaths) != 2 || cfg.Privacy.RedactPaths[1] != "*.pem" {
		t.Errorf("RedactPaths = %v", cfg.Privacy.RedactPaths)
	}
}

func TestSetField_Errors(t *testing.T) {
	cfg := Default()
	if err := SetField(&cfg, "nonexistent", "value"); err == nil {
		t.Error("Expected error for unknown key")
	}
	if err := SetField(&cfg, "privacy.redact_secrets", "maybe"); err == nil {
		t.Error("Expected error for non-bool value")
	}
	if err := SetField(&cfg, "format", "sarif"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestMasked(t *testing.T) {
	cfg := Default()
	cfg.APIKey = "AIzaSyExample1234"
	m := cfg.Masked()
	if strings.Contains(m.APIKey, "AIza") || !strings.HasSuffix(m.APIKey, "1234") {
		t.Errorf("Masked key = %q", m.APIKey)
	}
	if cfg.APIKey != "AIzaSyExample1234" {
		t.Error("Masked must not modify the receiver")
	}
	cfg.APIKey = "abc"
	if cfg.Masked().APIKey != "****" {
		t.Errorf("short key masked = %q", cfg.Masked().APIKey)
	}
}

func TestConfigPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	if path != "/tmp/xdg-test/glance/config.yaml" {
		t.Errorf("ConfigPath = %q, want %q", path, "/tmp/xdg-test/glance/config.yaml")
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.Model = "gemini-2.0-flash"
	cfg.APIKey = "secret"
	cfg.Privacy.RedactSecrets = false
	if err := Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	path, _ := ConfigPath()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat error: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.Model != "gemini-2.0-flash" || loaded.APIKey != "secret" {
		t.Errorf("LoadFile = %+v", loaded)
	}
	if loaded.Privacy.RedactSecrets {
		t.Error("explicit false in file should survive LoadFile")
	}

	merged, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if merged.Privacy.RedactSecrets {
		t.Error("explicit false in file should survive Load")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	isolate(t)
	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Model != Default().Model {
		t.Error("LoadFile without a file should return defaults")
	}
}
