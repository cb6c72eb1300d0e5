package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"intervalist/internal/core/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return &Store{dir: t.TempDir()}
}

func TestStore_LoadMissingFileReturnsDefaults(t *testing.T) {
	store := newTestStore(t)

	library, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if library.Last.Name != "Tabata" {
		t.Errorf("Last.Name = %q, want Tabata", library.Last.Name)
	}
	if len(library.Presets) != 2 {
		t.Errorf("got %d presets, want 2", len(library.Presets))
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	library := DefaultLibrary()
	library.Last = Preset{Name: "Sprints", PrepSeconds: 5, Sets: 6, WorkSeconds: 45, RestSeconds: 15, CooldownSeconds: 90}
	library.Presets = append(library.Presets, library.Last)

	if err := store.Save(library); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Last != library.Last {
		t.Errorf("Last = %+v, want %+v", loaded.Last, library.Last)
	}
	if len(loaded.Presets) != len(library.Presets) {
		t.Fatalf("got %d presets, want %d", len(loaded.Presets), len(library.Presets))
	}
	for i, preset := range library.Presets {
		if loaded.Presets[i] != preset {
			t.Errorf("preset %d = %+v, want %+v", i, loaded.Presets[i], preset)
		}
	}
}

func TestStore_LoadCorruptFile(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(store.dir, libraryFileName)
	if err := os.WriteFile(path, []byte("presets: [not: valid: yaml"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	library, err := store.Load()
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
	// Defaults still come back so the app can start.
	if library.Last.Name != "Tabata" {
		t.Errorf("Last.Name = %q, want default Tabata", library.Last.Name)
	}
}

func TestPresetConfigRoundTrip(t *testing.T) {
	config := model.WorkoutConfig{
		Prep:     10 * time.Second,
		Sets:     8,
		Work:     20 * time.Second,
		Rest:     10 * time.Second,
		Cooldown: 60 * time.Second,
	}

	preset := PresetFromConfig("Tabata+", config)
	if preset.Config() != config {
		t.Errorf("round trip = %+v, want %+v", preset.Config(), config)
	}

	validated, err := model.Validate(preset.Config())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if validated != config {
		t.Errorf("validated = %+v, want %+v", validated, config)
	}
}
