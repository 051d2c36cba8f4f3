package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, uint32(10), cfg.MegahealthWarningThreshold)
	assert.Equal(t, uint32(5), cfg.MegahealthCriticalThreshold)
	assert.Equal(t, uint32(10), cfg.RedArmorWarningThreshold)
	assert.Equal(t, uint32(5), cfg.RedArmorCriticalThreshold)
	assert.Equal(t, "Key1", cfg.MegahealthHotkey)
	assert.Equal(t, "Key2", cfg.RedArmorHotkey)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "megahealth_warning_threshold = 10")
	assert.Contains(t, text, "megahealth_critical_threshold = 5")
	assert.Contains(t, text, "red_armor_warning_threshold = 10")
	assert.Contains(t, text, "red_armor_critical_threshold = 5")
	assert.Contains(t, text, `megahealth_hotkey = "Key1"`)
	assert.Contains(t, text, `red_armor_hotkey = "Key2"`)

	var onDisk Config
	_, err = toml.Decode(text, &onDisk)
	require.NoError(t, err)
	assert.Equal(t, cfg, onDisk)
}

func TestLoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `megahealth_warning_threshold = 12
megahealth_critical_threshold = 4
red_armor_warning_threshold = 8
red_armor_critical_threshold = 3
megahealth_hotkey = "F1"
red_armor_hotkey = "F2"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		MegahealthWarningThreshold:  12,
		MegahealthCriticalThreshold: 4,
		RedArmorWarningThreshold:    8,
		RedArmorCriticalThreshold:   3,
		MegahealthHotkey:            "F1",
		RedArmorHotkey:              "F2",
	}, cfg)
}

func TestLoadMalformedDoesNotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `megahealth_warning_threshold = "ten"
megahealth_critical_threshold = 5
red_armor_warning_threshold = 10
red_armor_critical_threshold = 5
megahealth_hotkey = "Key1"
red_armor_hotkey = "Key2"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Equal(t, ErrParse, errors.Cause(err))
	assert.Contains(t, err.Error(), "failed to parse config file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestLoadSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "megahealth_warning_threshold = \n[[["
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadFrom(path)
	assert.Equal(t, ErrParse, errors.Cause(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestLoadMissingField(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `megahealth_warning_threshold = 10
megahealth_critical_threshold = 5
red_armor_warning_threshold = 10
red_armor_critical_threshold = 5
megahealth_hotkey = "Key1"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Equal(t, ErrParse, errors.Cause(err))
	assert.Contains(t, err.Error(), "red_armor_hotkey")
}

func TestLoadWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", FileName)

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config file")
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, FileName), path)
}
