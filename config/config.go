package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/code-game-project/text-utils/casing"
	"github.com/code-game-project/text-utils/feedback"
)

const FeedbackPkg = feedback.Package("config")

const fileName = "casefmt.yaml"

// Config holds the per-user defaults of casefmt.
type Config struct {
	Format    casing.NamingFormat `yaml:"format"`
	TrimChars string              `yaml:"trim_chars"`
	LogLevel  string              `yaml:"log_level"`
	Color     bool                `yaml:"color"`
}

func Default() Config {
	return Config{
		Format:    casing.Underscores,
		TrimChars: " \t",
		LogLevel:  "info",
		Color:     true,
	}
}

func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "textutils")
}

// FilePath returns the location of the default config file.
func FilePath() string {
	return filepath.Join(ConfigDir(), fileName)
}

// Load reads the config file at path. Keys missing from the file keep their default values.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			feedback.Debug(FeedbackPkg, "No config file at %s, using defaults.", path)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config file '%s': %w", path, err)
	}
	if _, err := feedback.ParseSeverity(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("decode config file '%s': log_level: %w", path, err)
	}
	return cfg, nil
}

// Write stores cfg at path, creating missing directories.
func (c Config) Write(path string) error {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
