package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ShadingMode selects the fragment path for one draw call.
type ShadingMode int

const (
	// ShadeFlat outputs the interpolated vertex color.
	ShadeFlat ShadingMode = iota
	// ShadeSingle outputs the texture bound to unit 0.
	ShadeSingle
	// ShadeBlend mixes the textures bound to units 0, 1 and 2.
	ShadeBlend
)

func (m ShadingMode) String() string {
	switch m {
	case ShadeFlat:
		return "flat"
	case ShadeSingle:
		return "single"
	case ShadeBlend:
		return "blend"
	}
	return fmt.Sprintf("ShadingMode(%d)", int(m))
}

// BlendMode chooses how blend weights are normalised.
type BlendMode int

const (
	// BlendFaithful multiplies each sample by its weight and then again by
	// weight/sum, so a texture contributes weight²/sum.
	BlendFaithful BlendMode = iota
	// BlendCorrected scales each sample by weight/sum only.
	BlendCorrected
)

func (m BlendMode) String() string {
	if m == BlendCorrected {
		return "corrected"
	}
	return "faithful"
}

func ParseBlendMode(s string) (BlendMode, error) {
	switch s {
	case "faithful", "":
		return BlendFaithful, nil
	case "corrected":
		return BlendCorrected, nil
	}
	return BlendFaithful, fmt.Errorf("unknown blend mode %q", s)
}

// Shading is what the renderer needs to set before a draw call.
type Shading struct {
	Mode ShadingMode
	// Textures lists texture-set indices per texture unit. Only the first
	// entry is meaningful outside ShadeBlend.
	Textures [BlendSlots]int
	Weights  [BlendSlots]float32
}

// Units returns how many texture units the mode samples.
func (s Shading) Units() int {
	switch s.Mode {
	case ShadeSingle:
		return 1
	case ShadeBlend:
		return BlendSlots
	}
	return 0
}

// SelectShading derives the mode from the two descriptor flags.
func SelectShading(d Descriptor) Shading {
	switch {
	case !d.UseTexture:
		return Shading{Mode: ShadeFlat, Textures: [BlendSlots]int{d.Texture}}
	case !d.Blend.Enabled:
		return Shading{Mode: ShadeSingle, Textures: [BlendSlots]int{d.Texture}}
	default:
		return Shading{Mode: ShadeBlend, Textures: d.Blend.Textures, Weights: d.Blend.Weights}
	}
}

// Blend mixes three samples exactly like the fragment shader does. A
// non-positive weight sum yields transparent black.
func Blend(samples [BlendSlots]mgl32.Vec4, weights [BlendSlots]float32, mode BlendMode) mgl32.Vec4 {
	var sum float32
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return mgl32.Vec4{}
	}

	var out mgl32.Vec4
	for i, s := range samples {
		k := weights[i] / sum
		if mode == BlendFaithful {
			k *= weights[i]
		}
		out = out.Add(s.Mul(k))
	}
	return out
}

// Sampler returns the color of texture tex at the fragment being shaded.
type Sampler func(tex int) mgl32.Vec4

// Shade is the CPU reference of the fragment shader for one fragment.
func Shade(s Shading, mode BlendMode, vertexColor mgl32.Vec3, sample Sampler) mgl32.Vec4 {
	switch s.Mode {
	case ShadeSingle:
		return sample(s.Textures[0])
	case ShadeBlend:
		var samples [BlendSlots]mgl32.Vec4
		for i, tex := range s.Textures {
			samples[i] = sample(tex)
		}
		return Blend(samples, s.Weights, mode)
	}
	return vertexColor.Vec4(1)
}
