package core

import "github.com/go-gl/mathgl/mgl32"

type Color struct {
	R, G, B, A float32
}

// ColorFromArray converts a config-style RGBA quadruple.
func ColorFromArray(c [4]float32) Color {
	return Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Vec4 returns the color as an RGBA vector.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// Vertex is the interleaved layout uploaded to the GPU: 8 float32s,
// position at location 0, color at 1, texture coordinate at 2.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	UV       mgl32.Vec2
}

type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}
