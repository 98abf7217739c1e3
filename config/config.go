// Package config persists user preferences as a small TOML file under the
// platform config directory. Missing files are not an error: Load returns
// defaults so first run needs no setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/familiar/render"
	"github.com/lixenwraith/familiar/terminal"
	"github.com/lixenwraith/familiar/toml"
)

// Config holds the persisted preferences
type Config struct {
	Face      string `toml:"face"`
	ColorMode string `toml:"color_mode"`
	Chime     bool   `toml:"chime"`
}

// Default returns the preferences used when no file exists
func Default() Config {
	return Config{
		Face:      render.FaceOrb.String(),
		ColorMode: "auto",
		Chime:     true,
	}
}

// DefaultPath returns the preferences file location under the user config
// directory, typically ~/.config/familiar/config.toml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "familiar", "config.toml"), nil
}

// Load reads preferences from path. A missing file yields defaults with a
// nil error; a malformed file is an error
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes preferences atomically: temp file in the target directory,
// then rename over the destination
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "config-*.toml")
	if err != nil {
		return fmt.Errorf("temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// ParseColorMode resolves the color_mode preference. "auto" defers to
// terminal detection at startup
func ParseColorMode(s string) (terminal.ColorMode, bool, error) {
	switch s {
	case "auto", "":
		return terminal.ColorModeTrueColor, true, nil
	case "truecolor":
		return terminal.ColorModeTrueColor, false, nil
	case "256":
		return terminal.ColorMode256, false, nil
	}
	return terminal.ColorModeTrueColor, false, fmt.Errorf("unknown color mode %q", s)
}
