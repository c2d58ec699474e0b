package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultAspect is used when the framebuffer has no usable size.
const DefaultAspect = float32(800.0 / 600.0)

// Scene is the whole mutable application state of the viewer. It is owned
// by the frame loop; the debug panel only changes it through commands.
type Scene struct {
	Camera       *Camera
	Objects      []Descriptor
	TextureNames []string
	SpinRate     float32
	BlendMode    BlendMode
}

// NewScene builds the default twelve-object scene for the given texture set.
func NewScene(textureNames []string) *Scene {
	return &Scene{
		Camera:       NewCamera(),
		Objects:      DefaultDescriptors(len(textureNames)),
		TextureNames: textureNames,
		SpinRate:     DefaultSpinRate,
	}
}

// DrawCall is everything the renderer needs for one object.
type DrawCall struct {
	Index     int
	Transform mgl32.Mat4
	Shading   Shading
}

// DrawList computes the per-object transforms and shading at time t seconds.
// Descriptors are read on every call; nothing is cached between frames.
func (s *Scene) DrawList(t float64, aspect float32) []DrawCall {
	if aspect <= 0 {
		aspect = DefaultAspect
	}
	projection := s.Camera.ProjectionMatrix(aspect)
	view := s.Camera.ViewMatrix()
	spin := SpinMatrix(t, s.SpinRate)

	calls := make([]DrawCall, len(s.Objects))
	for i, d := range s.Objects {
		calls[i] = DrawCall{
			Index:     i,
			Transform: MVP(projection, view, ModelMatrix(d, spin)),
			Shading:   SelectShading(d),
		}
	}
	return calls
}

// Snapshot returns a copy of the descriptor table for read-only consumers.
func (s *Scene) Snapshot() []Descriptor {
	out := make([]Descriptor, len(s.Objects))
	copy(out, s.Objects)
	return out
}

// Object returns descriptor i or an error when i is out of range.
func (s *Scene) Object(i int) (*Descriptor, error) {
	if i < 0 || i >= len(s.Objects) {
		return nil, fmt.Errorf("object index %d out of range [0, %d)", i, len(s.Objects))
	}
	return &s.Objects[i], nil
}

// ValidTexture reports whether tex indexes the texture set.
func (s *Scene) ValidTexture(tex int) bool {
	return tex >= 0 && tex < len(s.TextureNames)
}

// TextureName returns the display name for tex, or "?" if out of range.
func (s *Scene) TextureName(tex int) string {
	if !s.ValidTexture(tex) {
		return "?"
	}
	return s.TextureNames[tex]
}
