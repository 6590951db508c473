package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	settings, err := LoadSettings(fs, "/data")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadSettingsPartialFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	yaml := "work_minutes: 50\ndefault_color: \"#5eead4\"\n"
	require.NoError(t, afero.WriteFile(fs, "/data/settings.yaml", []byte(yaml), 0o644))

	settings, err := LoadSettings(fs, "/data")
	require.NoError(t, err)
	assert.Equal(t, 50, settings.WorkMinutes)
	assert.Equal(t, "#5eead4", settings.DefaultColor)
	// unset fields keep defaults
	assert.Equal(t, 8, settings.GridFirstHour)
	assert.Equal(t, 19, settings.GridLastHour)
	assert.Equal(t, 5, settings.BreakMinutes)
}

func TestLoadSettingsRejectsBadHourRange(t *testing.T) {
	fs := afero.NewMemMapFs()
	yaml := "grid_first_hour: 20\ngrid_last_hour: 9\n"
	require.NoError(t, afero.WriteFile(fs, "/data/settings.yaml", []byte(yaml), 0o644))

	settings, err := LoadSettings(fs, "/data")
	require.NoError(t, err)
	assert.Equal(t, 8, settings.GridFirstHour)
	assert.Equal(t, 19, settings.GridLastHour)
}

func TestLoadSettingsBadYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/settings.yaml", []byte(":\t:::"), 0o644))

	settings, err := LoadSettings(fs, "/data")
	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	want := Settings{
		GridFirstHour: 7,
		GridLastHour:  22,
		DefaultColor:  "#fca5a5",
		WorkMinutes:   45,
		BreakMinutes:  10,
		Rounds:        3,
	}
	require.NoError(t, SaveSettings(fs, "/data", want))

	got, err := LoadSettings(fs, "/data")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
