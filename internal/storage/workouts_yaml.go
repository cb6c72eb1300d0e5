// Package storage persists workout presets and the last-used configuration
// as YAML under the user's config directory.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"intervalist/internal/core/model"
)

const libraryFileName = "workouts.yaml"

// Preset is a named workout configuration. All durations are stored as
// whole seconds, matching the units of the timer itself.
type Preset struct {
	Name            string `yaml:"name"`
	PrepSeconds     int    `yaml:"prep_seconds"`
	Sets            int    `yaml:"sets"`
	WorkSeconds     int    `yaml:"work_seconds"`
	RestSeconds     int    `yaml:"rest_seconds"`
	CooldownSeconds int    `yaml:"cooldown_seconds,omitempty"`
}

// Library is the persisted collection of presets plus the last-used config.
type Library struct {
	Last    Preset   `yaml:"last"`
	Presets []Preset `yaml:"presets"`
}

// Store reads and writes the workout library.
type Store struct {
	dir string
}

// NewStore resolves the library location under the OS config directory.
func NewStore(appName string) (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return &Store{dir: filepath.Join(configDir, appName)}, nil
}

// Load reads the library from disk. A missing file yields the built-in
// defaults, not an error.
func (store *Store) Load() (Library, error) {
	rawData, err := os.ReadFile(filepath.Join(store.dir, libraryFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultLibrary(), nil
		}
		return DefaultLibrary(), fmt.Errorf("read workout library: %w", err)
	}

	var library Library
	if err := yaml.Unmarshal(rawData, &library); err != nil {
		return DefaultLibrary(), fmt.Errorf("parse workout library: %w", err)
	}
	if library.Last == (Preset{}) {
		library.Last = DefaultLibrary().Last
	}
	return library, nil
}

// Save writes the library to disk, creating the directory if needed.
func (store *Store) Save(library Library) error {
	if err := os.MkdirAll(store.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(library)
	if err != nil {
		return fmt.Errorf("marshal workout library: %w", err)
	}

	if err := os.WriteFile(filepath.Join(store.dir, libraryFileName), serialized, 0o644); err != nil {
		return fmt.Errorf("write workout library: %w", err)
	}
	return nil
}

// DefaultLibrary returns the built-in presets used before the user saves
// anything of their own.
func DefaultLibrary() Library {
	tabata := Preset{
		Name:        "Tabata",
		PrepSeconds: 10,
		Sets:        8,
		WorkSeconds: 20,
		RestSeconds: 10,
	}
	return Library{
		Last: tabata,
		Presets: []Preset{
			tabata,
			{
				Name:            "30/30",
				PrepSeconds:     15,
				Sets:            10,
				WorkSeconds:     30,
				RestSeconds:     30,
				CooldownSeconds: 60,
			},
		},
	}
}

// Config converts the preset into an engine configuration.
func (preset Preset) Config() model.WorkoutConfig {
	return model.WorkoutConfig{
		Prep:     time.Duration(preset.PrepSeconds) * time.Second,
		Sets:     preset.Sets,
		Work:     time.Duration(preset.WorkSeconds) * time.Second,
		Rest:     time.Duration(preset.RestSeconds) * time.Second,
		Cooldown: time.Duration(preset.CooldownSeconds) * time.Second,
	}
}

// PresetFromConfig converts a validated configuration back into a preset.
func PresetFromConfig(name string, config model.WorkoutConfig) Preset {
	return Preset{
		Name:            name,
		PrepSeconds:     int(config.Prep / time.Second),
		Sets:            config.Sets,
		WorkSeconds:     int(config.Work / time.Second),
		RestSeconds:     int(config.Rest / time.Second),
		CooldownSeconds: int(config.Cooldown / time.Second),
	}
}
