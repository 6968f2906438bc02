// Package config loads the nailbox settings file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/nailbox"
)

// Config holds the box dimensions and session preferences.
type Config struct {
	NailsPerSide int     `json:"nails_per_side"`
	CubeSize     float64 `json:"cube_size"`
	Spacing      float64 `json:"spacing"`
	LogDir       string  `json:"log_dir,omitempty"`
	ShowAll      bool    `json:"show_all,omitempty"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		NailsPerSide: nailbox.DefaultNailsPerSide,
		CubeSize:     nailbox.DefaultCubeSize,
		Spacing:      nailbox.DefaultSpacing,
	}
}

// Dir returns the nailbox settings directory in the user's home directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".nailbox"), nil
}

// DefaultPath returns the default settings file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the settings file at path. A missing file yields Default().
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault reads the settings file at DefaultPath.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}

// Save writes cfg to path as indented JSON.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Options converts the box dimensions to nailbox options.
func (c Config) Options() []nailbox.Option {
	return []nailbox.Option{
		nailbox.WithNailsPerSide(c.NailsPerSide),
		nailbox.WithCubeSize(c.CubeSize),
		nailbox.WithSpacing(c.Spacing),
	}
}

// NewBox builds the box described by c.
func (c Config) NewBox() (*nailbox.Box, error) {
	return nailbox.NewBox(c.Options()...)
}
