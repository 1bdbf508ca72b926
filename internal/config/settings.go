package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the display preferences of the dashboard. They come from an
// optional YAML file; everything has a sensible default.
type Settings struct {
	Renderer       string   `yaml:"renderer"`        // overrides CHART_RENDERER
	DefaultSubject string   `yaml:"default_subject"` // initial radio selection
	DefaultGrade   int      `yaml:"default_grade"`
	AllLabel       string   `yaml:"all_label"`
	SelectedLabel  string   `yaml:"selected_label"`
	Palette        []string `yaml:"palette"` // optional state color override
}

func DefaultSettings() Settings {
	return Settings{
		DefaultSubject: "Mathematics",
		DefaultGrade:   8,
		AllLabel:       "Show All States",
		SelectedLabel:  "Select States of Interest from Drop-Down Menu",
	}
}

// LoadSettings reads the YAML settings file and overlays it on the defaults.
// An empty path returns the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings file: %w", err)
	}
	if s.DefaultSubject == "" {
		s.DefaultSubject = "Mathematics"
	}
	if s.DefaultGrade == 0 {
		s.DefaultGrade = 8
	}
	if s.AllLabel == "" {
		s.AllLabel = DefaultSettings().AllLabel
	}
	if s.SelectedLabel == "" {
		s.SelectedLabel = DefaultSettings().SelectedLabel
	}
	return s, nil
}
