package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSettingsFrom_MissingFileIsEmpty(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "nope.json"))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettingsFrom_ParsesFields(t *testing.T) {
	path := writeSettings(t, `{
		"interval_seconds": 90,
		"tone_frequency_hz": 660,
		"flash_duration_ms": 500,
		"mute": true,
		"keys": {"next_set": "x", "toggle": ["space", "p"]}
	}`)

	settings, err := LoadSettingsFrom(path)
	require.NoError(t, err)

	require.NotNil(t, settings.IntervalSeconds)
	assert.Equal(t, 90, *settings.IntervalSeconds)
	require.NotNil(t, settings.ToneFrequencyHz)
	assert.Equal(t, 660.0, *settings.ToneFrequencyHz)
	require.NotNil(t, settings.FlashDurationMs)
	assert.Equal(t, 500, *settings.FlashDurationMs)
	require.NotNil(t, settings.Mute)
	assert.True(t, *settings.Mute)
	assert.Nil(t, settings.Debug)
	assert.Equal(t, KeyBindingValue{"x"}, settings.Keys["next_set"])
	assert.Equal(t, KeyBindingValue{"space", "p"}, settings.Keys["toggle"])
}

func TestLoadSettingsFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"interval_seconds":`},
		{"zero interval", `{"interval_seconds": 0}`},
		{"negative flash", `{"flash_duration_ms": -1}`},
		{"inaudible tone", `{"tone_frequency_hz": 5}`},
		{"negative log files", `{"max_log_files": -3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettingsFrom(writeSettings(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	t.Setenv(EnvHome, filepath.Join(t.TempDir(), "home"))
	interval := 60

	require.NoError(t, SaveSettings(&Settings{IntervalSeconds: &interval}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, settings.IntervalSeconds)
	assert.Equal(t, 60, *settings.IntervalSeconds)
}

func TestKeyBindingValue_MarshalSingleAsString(t *testing.T) {
	data, err := json.Marshal(KeyBindingsConfig{"help": {"?"}, "quit": {"q", "esc"}})

	require.NoError(t, err)
	assert.JSONEq(t, `{"help":"?","quit":["q","esc"]}`, string(data))
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"help", "next_set", "quit", "toggle"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{"nil config", nil, ""},
		{"valid overrides", KeyBindingsConfig{"next_set": {"x"}, "toggle": {"p", "space"}}, ""},
		{"empty list uses default", KeyBindingsConfig{"help": {}}, ""},
		{"unknown name", KeyBindingsConfig{"jump": {"j"}}, "unknown key binding 'jump'"},
		{"empty key", KeyBindingsConfig{"quit": {""}}, "contains empty value"},
		{"duplicate key", KeyBindingsConfig{"quit": {"x"}, "next_set": {"x"}}, "is assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetSettingsExample_CoversAllFields(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, 120, example["interval_seconds"])
	assert.Equal(t, 880.0, example["tone_frequency_hz"])
	assert.Equal(t, true, example["debug"])
	assert.Equal(t, false, example["mute"])
	assert.Contains(t, example, "keys")
	assert.Len(t, example, 7)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "x", "y"), ExpandPath("~/x/y"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}

func TestGetSettingsPath_UsesHomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
}
