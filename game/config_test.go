package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ScreenWidth != DefaultConfig().ScreenWidth {
		t.Fatalf("expected defaults")
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyraid.yaml")
	data := []byte("combo_max: 4\nmissile_radius: 90\npowerup_kinds: [life, shield]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ComboMax != 4 || cfg.MissileRadius != 90 {
		t.Fatalf("overlay not applied: %+v", cfg)
	}
	if len(cfg.PowerUpKinds) != 2 || cfg.PowerUpKinds[1] != PowerUpShield {
		t.Fatalf("power-up kinds = %v", cfg.PowerUpKinds)
	}
	if cfg.FPS != 60 {
		t.Fatalf("untouched fields should keep defaults")
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"negative radius": "missile_radius: -1\n",
		"unknown kind":    "powerup_kinds: [laser]\n",
		"drop chance":     "powerup_drop_chance: 1.5\n",
		"spawn floor":     "initial_spawn_interval: 5\n",
		"no combo window": "combo_window: 0\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateRequiresComboWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ComboWindow = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	if _, err := NewRun(cfg, 1); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("NewRun err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: [oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}
