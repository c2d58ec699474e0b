package scene

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Texture holds CPU-side pixel data for a 2D texture.
// GLID is set by the OpenGL backend after upload and stays 0 when the image
// could not be loaded.
type Texture struct {
	Name   string
	Path   string
	Width  int
	Height int
	// Pixels in RGBA8 format, bottom row first (OpenGL's origin).
	Pixels []byte
	GLID   uint32
}

// Loaded reports whether pixel data is available for upload.
func (t *Texture) Loaded() bool {
	return t != nil && len(t.Pixels) > 0
}

// LoadTexture reads a PNG or JPEG file from disk and returns a CPU-side
// Texture, converted to RGBA8 and flipped vertically.
func LoadTexture(name, path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	return NewTextureFromImage(name, path, img), nil
}

// NewTextureFromImage converts img to a bottom-up RGBA8 texture.
func NewTextureFromImage(name, path string, img image.Image) *Texture {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &Texture{
		Name:   name,
		Path:   path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: flipRows(rgba.Pix, rgba.Stride, bounds.Dy()),
	}
}

func flipRows(pix []byte, stride, rows int) []byte {
	out := make([]byte, len(pix))
	for y := 0; y < rows; y++ {
		src := pix[y*stride : (y+1)*stride]
		copy(out[(rows-1-y)*stride:], src)
	}
	return out
}

// TextureLoadError records a texture of the set that failed to load.
type TextureLoadError struct {
	Index int
	Name  string
	Err   error
}

func (e *TextureLoadError) Error() string {
	return fmt.Sprintf("texture %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *TextureLoadError) Unwrap() error { return e.Err }

// LoadTextureSet loads every path. A failed entry is kept as an empty
// Texture so indices stay stable; its error is returned alongside.
func LoadTextureSet(names, paths []string) ([]*Texture, []*TextureLoadError) {
	textures := make([]*Texture, len(paths))
	var failures []*TextureLoadError
	for i, path := range paths {
		name := path
		if i < len(names) {
			name = names[i]
		}
		tex, err := LoadTexture(name, path)
		if err != nil {
			failures = append(failures, &TextureLoadError{Index: i, Name: name, Err: err})
			tex = &Texture{Name: name, Path: path}
		}
		textures[i] = tex
	}
	return textures, failures
}
