package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the REPL configuration. Values come from an optional
// YAML file; anything left unset falls back to the defaults.
type Settings struct {
	Prompt       string `yaml:"prompt"`
	Color        string `yaml:"color"`
	HistoryLimit int    `yaml:"history_limit"`
}

func Default() Settings {
	return Settings{
		Prompt:       DefaultPrompt,
		Color:        ColorAuto,
		HistoryLimit: DefaultHistoryLimit,
	}
}

// Load reads settings from a YAML file on top of the defaults. Unknown
// keys are rejected so typos surface instead of silently defaulting.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return Default(), err
	}
	return s, nil
}

func (s Settings) validate() error {
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want %s, %s or %s)", s.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if s.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", s.HistoryLimit)
	}
	return nil
}
