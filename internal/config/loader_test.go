package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("Parse(default yaml) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("embedded yaml = %+v\nexpected %+v", cfg, DefaultFlappyConfig())
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"flappy.yaml":  FormatYAML,
		"flappy.yml":   FormatYAML,
		"flappy.toml":  FormatTOML,
		"FLAPPY.TOML":  FormatTOML,
		"no-extension": FormatYAML,
	}
	for path, expected := range tests {
		if got := FormatFor(path); got != expected {
			t.Errorf("FormatFor(%q) = %q, expected %q", path, got, expected)
		}
	}
}

func TestParsePartialYAMLKeepsDefaults(t *testing.T) {
	data := []byte("obstacles:\n  width: 80\n")

	cfg, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Obstacles.Width != 80 {
		t.Errorf("Obstacles.Width = %v, expected 80", cfg.Obstacles.Width)
	}
	if cfg.Obstacles.MinHeight != 50 {
		t.Errorf("Obstacles.MinHeight = %v, expected default 50", cfg.Obstacles.MinHeight)
	}
	if cfg.World.Height != 640 {
		t.Errorf("World.Height = %v, expected default 640", cfg.World.Height)
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[world]
width = 400

[difficulty.speed]
base = 2.0
step = 0.1
limit = 4.0
`)

	cfg, err := Parse(data, FormatTOML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.World.Width != 400 || cfg.World.Height != 640 {
		t.Errorf("World = %+v, expected 400x640", cfg.World)
	}
	if cfg.Difficulty.Speed != (Ramp{Base: 2.0, Step: 0.1, Limit: 4.0}) {
		t.Errorf("Speed ramp = %+v", cfg.Difficulty.Speed)
	}
	if cfg.Difficulty.Gravity != DefaultCurve().Gravity {
		t.Errorf("Gravity ramp should keep default, got %+v", cfg.Difficulty.Gravity)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "world: [unterminated"},
		{"zero width", "world:\n  width: 0\n"},
		{"min height fills field", "obstacles:\n  min_height: 400\n"},
		{"inverted gap ramp", "difficulty:\n  pipe_gap:\n    base: 100\n    step: -5\n    limit: 150\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data), FormatYAML); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[actor]\nx = 80\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Actor.X != 80 {
		t.Errorf("Actor.X = %v, expected 80", cfg.Actor.X)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".flappy")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("actor:\n  x: 70\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Actor.X != 70 {
		t.Errorf("Actor.X = %v, expected 70 from user config", cfg.Actor.X)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Obstacles.Width = 72

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}
