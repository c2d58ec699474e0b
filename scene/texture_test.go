package scene

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}
	img.Set(0, 0, red)
	img.Set(1, 0, red)
	img.Set(0, 1, blue)
	img.Set(1, 1, blue)

	path := filepath.Join(dir, "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoadTextureFlipsRows(t *testing.T) {
	path := writePNG(t, t.TempDir())

	tex, err := LoadTexture("Test", path)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if tex.Width != 2 || tex.Height != 2 || len(tex.Pixels) != 16 {
		t.Fatalf("unexpected size %dx%d (%d bytes)", tex.Width, tex.Height, len(tex.Pixels))
	}
	if !tex.Loaded() || tex.GLID != 0 {
		t.Errorf("expected loaded, not uploaded texture")
	}
	// The bottom image row (blue) comes first after the flip.
	if tex.Pixels[0] != 0 || tex.Pixels[2] != 255 {
		t.Errorf("first row: expected blue, got %v", tex.Pixels[0:4])
	}
	if tex.Pixels[8] != 255 || tex.Pixels[10] != 0 {
		t.Errorf("second row: expected red, got %v", tex.Pixels[8:12])
	}
}

func TestLoadTextureErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadTexture("missing", filepath.Join(dir, "none.jpg")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: expected ErrNotExist, got %v", err)
	}

	bogus := filepath.Join(dir, "bogus.png")
	if err := os.WriteFile(bogus, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTexture("bogus", bogus); err == nil {
		t.Error("undecodable file: expected error")
	}
}

func TestLoadTextureSetKeepsIndices(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir)
	names := []string{"Good", "Missing", "AlsoGood"}
	paths := []string{good, filepath.Join(dir, "missing.jpg"), good}

	textures, failures := LoadTextureSet(names, paths)

	if len(textures) != 3 {
		t.Fatalf("expected 3 textures, got %d", len(textures))
	}
	if len(failures) != 1 || failures[0].Index != 1 || failures[0].Name != "Missing" {
		t.Fatalf("expected one failure at index 1, got %v", failures)
	}
	if !errors.Is(failures[0], os.ErrNotExist) {
		t.Errorf("failure should unwrap to ErrNotExist: %v", failures[0])
	}
	if textures[1].Loaded() || textures[1].Name != "Missing" {
		t.Errorf("failed entry should be an empty placeholder, got %+v", textures[1])
	}
	if !textures[0].Loaded() || !textures[2].Loaded() {
		t.Error("good entries should be loaded")
	}
}
