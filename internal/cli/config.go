package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/coregx/bytere/meta"
)

var (
	errConfigFileRead = errors.New("cannot read config file")
	errConfigInvalid  = errors.New("invalid config file")
)

// Config is the resolved bgrep configuration.
type Config struct {
	Engine    meta.Config
	LogLevel  string
	LogFormat string
}

func defaultConfig() Config {
	return Config{
		Engine:    meta.DefaultConfig(),
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// fileConfig mirrors the JSON config file. Pointers tell an absent key
// from a zero value.
type fileConfig struct {
	Capacity  *int    `json:"capacity"`
	Prefilter *bool   `json:"prefilter"`
	LogLevel  *string `json:"log_level"`
	LogFormat *string `json:"log_format"`
}

// defaultConfigPath returns $XDG_CONFIG_HOME/bgrep/config.json, falling
// back to $HOME/.config. It returns "" if neither is set.
func defaultConfigPath(env map[string]string) string {
	if dir := env["XDG_CONFIG_HOME"]; dir != "" {
		return filepath.Join(dir, "bgrep", "config.json")
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "bgrep", "config.json")
	}
	return ""
}

// loadConfig applies the config file at path over base. A missing file is
// an error only when mustExist is set (the path came from --config).
func loadConfig(base Config, path string, mustExist bool) (Config, error) {
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !mustExist && errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("%w: %s: %w", errConfigFileRead, path, err)
	}

	fc, err := parseConfig(data)
	if err != nil {
		return base, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}
	return mergeConfig(base, fc), nil
}

func parseConfig(data []byte) (fileConfig, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(standardized, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return fc, nil
}

func mergeConfig(base Config, fc fileConfig) Config {
	if fc.Capacity != nil {
		base.Engine.Capacity = *fc.Capacity
	}
	if fc.Prefilter != nil {
		base.Engine.EnablePrefilter = *fc.Prefilter
	}
	if fc.LogLevel != nil {
		base.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		base.LogFormat = *fc.LogFormat
	}
	return base
}
