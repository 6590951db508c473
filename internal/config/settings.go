package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// Settings are the user tunables kept next to the data: the rendered
// grid's hour range, the default entry color and the focus-timer
// defaults.
type Settings struct {
	GridFirstHour int    `yaml:"grid_first_hour"`
	GridLastHour  int    `yaml:"grid_last_hour"`
	DefaultColor  string `yaml:"default_color"`
	WorkMinutes   int    `yaml:"work_minutes"`
	BreakMinutes  int    `yaml:"break_minutes"`
	Rounds        int    `yaml:"rounds"`
}

// DefaultSettings mirrors the timetable's 08:00-19:00 rows and the
// classic 25/5 four-round pomodoro.
func DefaultSettings() Settings {
	return Settings{
		GridFirstHour: 8,
		GridLastHour:  19,
		DefaultColor:  "#93c5fd",
		WorkMinutes:   25,
		BreakMinutes:  5,
		Rounds:        4,
	}
}

// LoadSettings reads settings.yaml from the data dir. A missing file
// returns the defaults; unusable individual values are ignored field by
// field so one bad line cannot take the rest down.
func LoadSettings(fs afero.Fs, dataDir string) (Settings, error) {
	settings := DefaultSettings()

	raw, err := afero.ReadFile(fs, filepath.Join(dataDir, settingsFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData Settings
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applySettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes the settings back to the data dir.
func SaveSettings(fs afero.Fs, dataDir string, settings Settings) error {
	raw, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	if err := fs.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := afero.WriteFile(fs, filepath.Join(dataDir, settingsFileName), raw, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applySettings(settings *Settings, fileData Settings) {
	if fileData.GridFirstHour >= 0 && fileData.GridFirstHour <= 23 &&
		fileData.GridLastHour > fileData.GridFirstHour && fileData.GridLastHour <= 23 {
		settings.GridFirstHour = fileData.GridFirstHour
		settings.GridLastHour = fileData.GridLastHour
	}
	if fileData.DefaultColor != "" {
		settings.DefaultColor = fileData.DefaultColor
	}
	if fileData.WorkMinutes > 0 {
		settings.WorkMinutes = fileData.WorkMinutes
	}
	if fileData.BreakMinutes > 0 {
		settings.BreakMinutes = fileData.BreakMinutes
	}
	if fileData.Rounds > 0 {
		settings.Rounds = fileData.Rounds
	}
}
