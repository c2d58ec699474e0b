package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewer.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Textures) != 5 {
		t.Errorf("expected 5 default textures, got %d", len(cfg.Textures))
	}
	if cfg.Camera.ZoomSpeed != 200 || cfg.Camera.MoveSpeed != 5 {
		t.Errorf("unexpected camera rates: %+v", cfg.Camera)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window != Default().Window {
		t.Errorf("expected default window, got %+v", cfg.Window)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
window:
  width: 800
  height: 600
camera:
  mouse_sensitivity: 1.5
blend_mode: corrected
textures:
  - name: Brick
    file: brick.png
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window size not applied: %+v", cfg.Window)
	}
	if cfg.Window.Title != "Main Screen" {
		t.Errorf("unset title should keep default, got %q", cfg.Window.Title)
	}
	if cfg.Camera.MouseSensitivity != 1.5 {
		t.Errorf("sensitivity: expected 1.5, got %v", cfg.Camera.MouseSensitivity)
	}
	if cfg.Camera.ZoomSpeed != 200 {
		t.Errorf("unset zoom speed should keep default, got %v", cfg.Camera.ZoomSpeed)
	}
	if cfg.BlendMode != BlendCorrected {
		t.Errorf("blend mode: expected corrected, got %q", cfg.BlendMode)
	}
	if len(cfg.Textures) != 1 || cfg.Textures[0].Name != "Brick" {
		t.Errorf("textures not replaced: %+v", cfg.Textures)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"malformed":   "window: [",
		"blend mode":  "blend_mode: average",
		"window size": "window:\n  width: 0",
		"clip planes": "camera:\n  near: 10\n  far: 1",
		"fov":         "camera:\n  fov: 180",
		"no textures": "textures: []",
	}
	for name, body := range cases {
		if _, err := Load(writeFile(t, body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestTexturePaths(t *testing.T) {
	cfg := Default()
	cfg.TextureDir = "assets"
	paths := cfg.TexturePaths()
	if paths[0] != filepath.Join("assets", "wood.jpg") {
		t.Errorf("unexpected path %q", paths[0])
	}
	names := cfg.TextureNames()
	if names[4] != "Stone" {
		t.Errorf("unexpected name %q", names[4])
	}
}

func TestFromFlags(t *testing.T) {
	path := writeFile(t, "texture_dir: from-file\nwindow:\n  width: 640\n")
	cfg, err := FromFlags([]string{"-config", path, "-textures", "from-flag", "-blend", "corrected", "-debug"})
	if err != nil {
		t.Fatalf("FromFlags: %v", err)
	}
	if cfg.TextureDir != "from-flag" {
		t.Errorf("flag should override file, got %q", cfg.TextureDir)
	}
	if cfg.Window.Width != 640 {
		t.Errorf("unset flag should keep file value, got %d", cfg.Window.Width)
	}
	if cfg.BlendMode != BlendCorrected || !cfg.Debug {
		t.Errorf("flags not applied: blend=%q debug=%v", cfg.BlendMode, cfg.Debug)
	}

	if _, err := FromFlags([]string{"-config", path, "-blend", "bogus"}); err == nil {
		t.Error("expected validation error for bogus blend flag")
	}
}

func TestFromFlagsExplicitConfigMustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yml")
	_, err := FromFlags([]string{"-config", missing})
	if err == nil {
		t.Fatal("expected an error for a missing -config file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}

	if _, err := LoadFile(missing); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile: expected a not-exist error, got %v", err)
	}
}
