package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Interview duration bounds in minutes.
const (
	MinDurationMinutes = 10
	MaxDurationMinutes = 60
)

// Config holds optional user preferences loaded from a YAML file,
// overridable through INTERVU_* environment variables.
type Config struct {
	// DefaultRole pre-fills the role field on the setup screen.
	DefaultRole string `yaml:"default_role"`

	// RolePresets are offered as suggestions on the setup screen.
	RolePresets []string `yaml:"role_presets"`

	// DefaultDurationMinutes pre-fills the duration field. Must stay
	// within [MinDurationMinutes, MaxDurationMinutes].
	DefaultDurationMinutes int `yaml:"default_duration_minutes"`

	// ReportDir is where exported reports are written. Empty means the
	// current working directory.
	ReportDir string `yaml:"report_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultDurationMinutes: 30,
	}
}

// Load reads the config file at path, applies environment overrides and
// validates the result. A missing file is not an error: defaults are used.
// A .env file in the working directory is loaded first, if present.
func Load(path string) (Config, error) {
	// Ignore a missing .env; it is a convenience for API keys.
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// DefaultPath resolves the config file location:
// 1. INTERVU_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/intervu/config.yaml
// 3. ~/.config/intervu/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("INTERVU_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "intervu", "config.yaml"), nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("INTERVU_DEFAULT_ROLE"); v != "" {
		cfg.DefaultRole = v
	}
	if v := os.Getenv("INTERVU_DEFAULT_DURATION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DefaultDurationMinutes = n
		}
	}
	if v := os.Getenv("INTERVU_REPORT_DIR"); v != "" {
		cfg.ReportDir = v
	}
}

func validate(cfg *Config) error {
	if cfg.DefaultDurationMinutes < MinDurationMinutes ||
		cfg.DefaultDurationMinutes > MaxDurationMinutes {
		return fmt.Errorf("default_duration_minutes %d out of range [%d, %d]",
			cfg.DefaultDurationMinutes, MinDurationMinutes, MaxDurationMinutes)
	}
	for i, preset := range cfg.RolePresets {
		if preset == "" {
			return fmt.Errorf("role_presets[%d] is empty", i)
		}
	}
	return nil
}
