package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dshills/glance/internal/gemini"
	"github.com/dshills/glance/internal/logger"
)

const envPrefix = "GLANCE"

// Config represents the glance configuration.
type Config struct {
	APIKey   string        `yaml:"api_key,omitempty"`
	Endpoint string        `yaml:"endpoint"`
	Model    string        `yaml:"model"`
	Preset   string        `yaml:"preset"`
	Prompt   string        `yaml:"prompt,omitempty"`
	Mode     string        `yaml:"mode"`
	Format   string        `yaml:"format"`
	Privacy  PrivacyConfig `yaml:"privacy"`
	Log      logger.Config `yaml:"log"`
	Server   ServerConfig  `yaml:"server"`
}

// PrivacyConfig controls redaction of the selection before it is sent.
type PrivacyConfig struct {
	RedactSecrets bool     `yaml:"redact_secrets"`
	RedactPaths   []string `yaml:"redact_paths,omitempty"`
}

// ServerConfig controls the editor bridge.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Endpoint: gemini.DefaultEndpoint,
		Model:    gemini.DefaultModel,
		Preset:   "web",
		Mode:     "modal",
		Format:   "text",
		Privacy: PrivacyConfig{
			RedactSecrets: true,
			RedactPaths:   []string{"**/.env", "**/*secrets*"},
		},
		Log: logger.Config{
			Level:  "warn",
			Format: "text",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:7419",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("api_key", "")
	v.SetDefault("endpoint", d.Endpoint)
	v.SetDefault("model", d.Model)
	v.SetDefault("preset", d.Preset)
	v.SetDefault("prompt", "")
	v.SetDefault("mode", d.Mode)
	v.SetDefault("format", d.Format)
	v.SetDefault("privacy.redact_secrets", d.Privacy.RedactSecrets)
	v.SetDefault("privacy.redact_paths", d.Privacy.RedactPaths)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("server.addr", d.Server.Addr)
}

// ConfigDir returns the platform-appropriate config directory for glance.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "glance"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "glance"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "glance"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "glance"), nil
	default:
		return filepath.Join(home, ".config", "glance"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile returns the defaults overlaid with the config file, if one exists.
func LoadFile() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file. The file is readable only by
// the owner since it may hold the API key.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// Override keys are the dotted config keys (e.g. "model", "privacy.redact_secrets");
// empty values are ignored.
func Load(overrides map[string]string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range overrides {
		if value != "" {
			v.Set(key, value)
		}
	}

	cfg := Config{
		APIKey:   v.GetString("api_key"),
		Endpoint: v.GetString("endpoint"),
		Model:    v.GetString("model"),
		Preset:   v.GetString("preset"),
		Prompt:   v.GetString("prompt"),
		Mode:     v.GetString("mode"),
		Format:   v.GetString("format"),
		Privacy: PrivacyConfig{
			RedactSecrets: v.GetBool("privacy.redact_secrets"),
			RedactPaths:   v.GetStringSlice("privacy.redact_paths"),
		},
		Log: logger.Config{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Server: ServerConfig{
			Addr: v.GetString("server.addr"),
		},
	}
	if cfg.APIKey == "" {
		cfg.APIKey = credentialFromEnv()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// credentialFromEnv falls back to the variables other Gemini tools use.
func credentialFromEnv() string {
	for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks enumerated fields. The API key is not checked here; it is
// only required by commands that call the API.
func (c Config) Validate() error {
	switch c.Mode {
	case "modal", "inline", "panel":
	default:
		return fmt.Errorf("invalid mode %q (want modal or inline)", c.Mode)
	}
	switch c.Format {
	case "text", "raw", "json":
	default:
		return fmt.Errorf("invalid format %q (want text, raw or json)", c.Format)
	}
	if c.Endpoint == "" || c.Model == "" {
		return errors.New("endpoint and model must not be empty")
	}
	return nil
}

// Masked returns a copy safe to print: the API key keeps only its last four
// characters.
func (c Config) Masked() Config {
	if c.APIKey == "" {
		return c
	}
	if len(c.APIKey) <= 4 {
		c.APIKey = "****"
		return c
	}
	c.APIKey = strings.Repeat("*", len(c.APIKey)-4) + c.APIKey[len(c.APIKey)-4:]
	return c
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "api_key":
		cfg.APIKey = value
	case "endpoint":
		cfg.Endpoint = value
	case "model":
		cfg.Model = value
	case "preset":
		cfg.Preset = value
	case "prompt":
		cfg.Prompt = value
	case "mode":
		cfg.Mode = value
	case "format":
		cfg.Format = value
	case "privacy.redact_secrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("privacy.redact_secrets must be true or false: %w", err)
		}
		cfg.Privacy.RedactSecrets = b
	case "privacy.redact_paths":
		cfg.Privacy.RedactPaths = splitList(value)
	case "log.level":
		cfg.Log.Level = value
	case "log.format":
		cfg.Log.Format = value
	case "server.addr":
		cfg.Server.Addr = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return cfg.Validate()
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
