// Package config loads citydelivery settings from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrUnsupportedFile is returned for config files with an unknown extension.
var ErrUnsupportedFile = errors.New("config: unsupported file type")

// Config holds run settings. Zero values in a file keep the defaults.
type Config struct {
	Format    string `yaml:"format" toml:"format"`
	Policy    string `yaml:"policy" toml:"policy"`
	Verify    bool   `yaml:"verify" toml:"verify"`
	Map       bool   `yaml:"map" toml:"map"`
	LogLevel  string `yaml:"log_level" toml:"log_level"`
	MaxRounds int    `yaml:"max_rounds" toml:"max_rounds"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Format:   FormatText,
		Policy:   "abort",
		LogLevel: "warn",
	}
}

// Load reads path on top of Default and validates the result. The decoder
// is picked by extension: .yaml/.yml or .toml. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := loadYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	case ".toml":
		if err := loadTOML(path, &cfg); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadYAML(path string, out *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func loadTOML(path string, out *Config) error {
	meta, err := toml.DecodeFile(path, out)
	if err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config parse failed (%s): unknown keys %v", path, undecoded)
	}
	return nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("config: format %q, want %q or %q", c.Format, FormatText, FormatYAML)
	}
	switch c.Policy {
	case "abort", "isolate":
	default:
		return fmt.Errorf("config: policy %q, want \"abort\" or \"isolate\"", c.Policy)
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		return errors.New("config: log_level is required")
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("config: max_rounds %d must not be negative", c.MaxRounds)
	}
	return nil
}
