// Package config loads the overlay settings from a TOML file in the user's
// home directory, writing a default file the first time it runs.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// FileName is the config file name inside the home directory.
const FileName = "quake-tools.toml"

var (
	// ErrHomeDir is returned when the home directory cannot be resolved.
	ErrHomeDir = errors.New("could not determine home directory")

	// ErrParse is returned when the config file exists but cannot be parsed.
	ErrParse = errors.New("failed to parse config file")
)

// Config holds the thresholds and hotkey names stored on disk.
type Config struct {
	MegahealthWarningThreshold  uint32 `toml:"megahealth_warning_threshold"`
	MegahealthCriticalThreshold uint32 `toml:"megahealth_critical_threshold"`
	RedArmorWarningThreshold    uint32 `toml:"red_armor_warning_threshold"`
	RedArmorCriticalThreshold   uint32 `toml:"red_armor_critical_threshold"`
	MegahealthHotkey            string `toml:"megahealth_hotkey"`
	RedArmorHotkey              string `toml:"red_armor_hotkey"`
}

var requiredKeys = []string{
	"megahealth_warning_threshold",
	"megahealth_critical_threshold",
	"red_armor_warning_threshold",
	"red_armor_critical_threshold",
	"megahealth_hotkey",
	"red_armor_hotkey",
}

// Default returns the settings written on first run.
func Default() Config {
	return Config{
		MegahealthWarningThreshold:  10,
		MegahealthCriticalThreshold: 5,
		RedArmorWarningThreshold:    10,
		RedArmorCriticalThreshold:   5,
		MegahealthHotkey:            "Key1",
		RedArmorHotkey:              "Key2",
	}
}

// DefaultPath returns the config file location under the home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrHomeDir
	}
	return filepath.Join(home, FileName), nil
}

// Load reads the config from DefaultPath.
func Load() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file is replaced by the
// defaults, which are written back. A file that exists but does not parse is
// an error and is left untouched.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return writeDefault(path)
	}
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(ErrParse, "%s: %v", path, err)
	}
	for _, key := range requiredKeys {
		if !md.IsDefined(key) {
			return Config{}, errors.Wrapf(ErrParse, "%s: missing field %q", path, key)
		}
	}
	return cfg, nil
}

func writeDefault(path string) (Config, error) {
	cfg := Default()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to serialize config")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return Config{}, errors.Wrap(err, "failed to write config file")
	}
	return cfg, nil
}
