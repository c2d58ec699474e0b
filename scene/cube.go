package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"scene-viewer/core"
)

// CreateCube returns the shared unit cube: eight corners with a color and a
// texture coordinate each, indexed as twelve triangles. Corners are shared
// between faces, so the side faces reuse the front/back texture coordinates.
func CreateCube() core.MeshData {
	v := func(x, y, z, r, g, b, u, t float32) core.Vertex {
		return core.Vertex{
			Position: mgl32.Vec3{x, y, z},
			Color:    mgl32.Vec3{r, g, b},
			UV:       mgl32.Vec2{u, t},
		}
	}

	vertices := []core.Vertex{
		// Back face
		v(-0.5, -0.5, -0.5, 1, 0, 0, 0, 0),
		v(0.5, -0.5, -0.5, 0, 1, 0, 1, 0),
		v(0.5, 0.5, -0.5, 0, 0, 1, 1, 1),
		v(-0.5, 0.5, -0.5, 1, 1, 0, 0, 1),
		// Front face
		v(-0.5, -0.5, 0.5, 1, 0, 1, 0, 0),
		v(0.5, -0.5, 0.5, 0, 1, 1, 1, 0),
		v(0.5, 0.5, 0.5, 1, 1, 1, 1, 1),
		v(-0.5, 0.5, 0.5, 0, 0, 1, 0, 1),
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0, // back
		4, 5, 6, 6, 7, 4, // front
		0, 4, 7, 7, 3, 0, // left
		1, 5, 6, 6, 2, 1, // right
		3, 2, 6, 6, 7, 3, // top
		0, 1, 5, 5, 4, 0, // bottom
	}

	return core.MeshData{Vertices: vertices, Indices: indices}
}
