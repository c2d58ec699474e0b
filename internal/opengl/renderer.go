package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"scene-viewer/core"
	"scene-viewer/internal/logger"
	"scene-viewer/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// Renderer draws the cube scene with a single shader program.
type Renderer struct {
	program uint32

	transformLoc int32

	textureLocs  [scene.BlendSlots]int32
	mixRatioLocs [scene.BlendSlots]int32

	useTextureLoc      int32
	useMultiTextureLoc int32
	correctedBlendLoc  int32

	cube     *GPUMesh
	textures []*scene.Texture
}

// NewRenderer loads the GL entry points, builds the shader program and
// uploads the cube. A broken shader is logged, not returned.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Log.Info("OpenGL context ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	prog, err := NewProgram(vertSrc, fragSrc)
	if err != nil {
		logger.Log.Error("shader program build failed", zap.Error(err))
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	r := &Renderer{
		program: prog,

		transformLoc: gl.GetUniformLocation(prog, gl.Str("transform\x00")),

		textureLocs: [scene.BlendSlots]int32{
			gl.GetUniformLocation(prog, gl.Str("texture1\x00")),
			gl.GetUniformLocation(prog, gl.Str("texture2\x00")),
			gl.GetUniformLocation(prog, gl.Str("texture3\x00")),
		},
		mixRatioLocs: [scene.BlendSlots]int32{
			gl.GetUniformLocation(prog, gl.Str("mixRatio1\x00")),
			gl.GetUniformLocation(prog, gl.Str("mixRatio2\x00")),
			gl.GetUniformLocation(prog, gl.Str("mixRatio3\x00")),
		},

		useTextureLoc:      gl.GetUniformLocation(prog, gl.Str("useTexture\x00")),
		useMultiTextureLoc: gl.GetUniformLocation(prog, gl.Str("useMultiTexture\x00")),
		correctedBlendLoc:  gl.GetUniformLocation(prog, gl.Str("correctedBlend\x00")),
	}

	// Sampler i always reads texture unit i.
	gl.UseProgram(prog)
	for unit, loc := range r.textureLocs {
		gl.Uniform1i(loc, int32(unit))
	}
	gl.UseProgram(0)

	r.cube = uploadMesh(scene.CreateCube())
	return r, nil
}

// ── Viewport ──────────────────────────────────────────────────────────────────

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// ── Frame ─────────────────────────────────────────────────────────────────────

// BeginFrame clears color and depth and activates the program.
func (r *Renderer) BeginFrame(clear core.Color) {
	gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.UseProgram(r.program)
}

// Draw issues one indexed draw of the cube with the call's transform and
// shading.
func (r *Renderer) Draw(call scene.DrawCall, mode scene.BlendMode) {
	if r.cube == nil {
		return
	}

	gl.UniformMatrix4fv(r.transformLoc, 1, false, &call.Transform[0])

	sh := call.Shading
	gl.Uniform1i(r.useTextureLoc, boolToInt(sh.Mode != scene.ShadeFlat))
	gl.Uniform1i(r.useMultiTextureLoc, boolToInt(sh.Mode == scene.ShadeBlend))
	gl.Uniform1i(r.correctedBlendLoc, boolToInt(mode == scene.BlendCorrected))

	for unit := 0; unit < sh.Units(); unit++ {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, r.textureID(sh.Textures[unit]))
	}
	if sh.Mode == scene.ShadeBlend {
		for i, loc := range r.mixRatioLocs {
			gl.Uniform1f(loc, sh.Weights[i])
		}
	}

	gl.BindVertexArray(r.cube.VAO)
	gl.DrawElements(gl.TRIANGLES, r.cube.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// EndFrame unbinds the state Draw left behind.
func (r *Renderer) EndFrame() {
	for unit := 0; unit < scene.BlendSlots; unit++ {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.UseProgram(0)
}

// ── Cleanup ───────────────────────────────────────────────────────────────────

// Destroy releases buffers, then the program, then the textures.
func (r *Renderer) Destroy() {
	if r.cube != nil {
		gl.DeleteVertexArrays(1, &r.cube.VAO)
		gl.DeleteBuffers(1, &r.cube.VBO)
		gl.DeleteBuffers(1, &r.cube.EBO)
		r.cube = nil
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	r.releaseTextures()
}

// ── Mesh upload ───────────────────────────────────────────────────────────────

func uploadMesh(mesh core.MeshData) *GPUMesh {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))
	gpu := &GPUMesh{IndexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.GenBuffers(1, &gpu.EBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(mesh.Indices)*4,
		gl.Ptr(mesh.Indices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	colorOff := int(unsafe.Offsetof(v.Color))
	uvOff := int(unsafe.Offsetof(v.UV))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(colorOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.BindVertexArray(0)
	return gpu
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
