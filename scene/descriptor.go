package scene

import "github.com/go-gl/mathgl/mgl32"

const (
	// ObjectCount is the fixed number of objects in the scene.
	ObjectCount = 12
	// BlendableObjects is how many leading objects expose blend controls.
	BlendableObjects = 3
	// BlendSlots is the number of textures mixed in blend mode.
	BlendSlots = 3
)

// BlendConfig describes a three-way weighted texture blend.
type BlendConfig struct {
	Enabled  bool
	Textures [BlendSlots]int
	Weights  [BlendSlots]float32
}

// Descriptor is the per-object render state: placement plus texture
// assignment. The renderer reads it every frame.
type Descriptor struct {
	Name     string
	Position mgl32.Vec3
	// Scale is applied before the translation; {1,1,1} for plain cubes.
	Scale      mgl32.Vec3
	UseTexture bool
	Texture    int
	Blend      BlendConfig
}

// Preset is a named set of blend weights offered by the debug panel.
type Preset struct {
	Name    string
	Weights [BlendSlots]float32
}

var (
	PresetEqual           = Preset{Name: "equal", Weights: [BlendSlots]float32{0.33, 0.33, 0.33}}
	PresetPrimaryDominant = Preset{Name: "primary-dominant", Weights: [BlendSlots]float32{0.7, 0.2, 0.1}}

	Presets = []Preset{PresetEqual, PresetPrimaryDominant}
)

var (
	unitScale = mgl32.Vec3{1, 1, 1}
	postScale = mgl32.Vec3{0.1, 2.0, 0.1}
	pipeX     = mgl32.Vec3{4.0, 0.1, 0.1}
	pipeZ     = mgl32.Vec3{0.1, 0.1, 4.0}
	pipeY     = mgl32.Vec3{0.1, 4.0, 0.1}
)

// layout is the fixed scene: five cubes, four posts, three pipes.
var layout = [ObjectCount]struct {
	name  string
	pos   mgl32.Vec3
	scale mgl32.Vec3
}{
	{"cube +x", mgl32.Vec3{2, -2, 0}, unitScale},
	{"cube -x", mgl32.Vec3{-2, -2, 0}, unitScale},
	{"cube +z", mgl32.Vec3{0, -2, 2}, unitScale},
	{"cube -z", mgl32.Vec3{0, -2, -2}, unitScale},
	{"cube top", mgl32.Vec3{0, 4, 0}, unitScale},

	{"post -x", mgl32.Vec3{-20, -0.5, 0}, postScale},
	{"post +x", mgl32.Vec3{20, -0.5, 0}, postScale},
	{"post +z", mgl32.Vec3{0, -0.5, 20}, postScale},
	{"post -z", mgl32.Vec3{0, -0.5, -20}, postScale},

	{"pipe x", mgl32.Vec3{0, -0.5, 0}, pipeX},
	{"pipe z", mgl32.Vec3{0, -0.5, 0}, pipeZ},
	{"pipe y", mgl32.Vec3{0, 0.5, 0}, pipeY},
}

// singleTextures is the initial single-texture assignment per object.
var singleTextures = [ObjectCount]int{0, 1, 2, 3, 4, 0, 1, 2, 3, 0, 1, 2}

// DefaultDescriptors builds the starting table for a texture set of
// textureCount entries. Indices wrap so smaller sets stay valid.
func DefaultDescriptors(textureCount int) []Descriptor {
	if textureCount < 1 {
		textureCount = 1
	}
	out := make([]Descriptor, ObjectCount)
	for i, l := range layout {
		out[i] = Descriptor{
			Name:       l.name,
			Position:   l.pos,
			Scale:      l.scale,
			UseTexture: true,
			Texture:    singleTextures[i] % textureCount,
			Blend: BlendConfig{
				Enabled: i < BlendableObjects,
				Textures: [BlendSlots]int{
					i % textureCount,
					(i + 1) % textureCount,
					(i + 2) % textureCount,
				},
				Weights: [BlendSlots]float32{1, 0, 0},
			},
		}
	}
	return out
}
