package imguiback

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/inkyblackness/imgui-go/v4"

	"scene-viewer/internal/opengl"
)

const uiVertSrc = `
#version 410 core
uniform mat4 ProjMtx;

in vec2 Position;
in vec2 UV;
in vec4 Color;

out vec2 Frag_UV;
out vec4 Frag_Color;

void main() {
    Frag_UV     = UV;
    Frag_Color  = Color;
    gl_Position = ProjMtx * vec4(Position.xy, 0.0, 1.0);
}
` + "\x00"

const uiFragSrc = `
#version 410 core
uniform sampler2D Texture;

in vec2 Frag_UV;
in vec4 Frag_Color;

out vec4 Out_Color;

void main() {
    Out_Color = Frag_Color * texture(Texture, Frag_UV.st);
}
` + "\x00"

// OpenGL3 draws ImGui draw lists on a 4.1 core context.
type OpenGL3 struct {
	io imgui.IO

	program     uint32
	fontTexture uint32
	vao         uint32
	vbo         uint32
	ebo         uint32

	texLoc     int32
	projMtxLoc int32
	posLoc     uint32
	uvLoc      uint32
	colorLoc   uint32
}

// NewOpenGL3 builds the UI program and uploads the font atlas. The GL
// context must be current and loaded.
func NewOpenGL3(io imgui.IO) (*OpenGL3, error) {
	prog, err := opengl.NewProgram(uiVertSrc, uiFragSrc)
	if err != nil {
		gl.DeleteProgram(prog)
		return nil, fmt.Errorf("ui shader: %w", err)
	}

	r := &OpenGL3{
		io:         io,
		program:    prog,
		texLoc:     gl.GetUniformLocation(prog, gl.Str("Texture\x00")),
		projMtxLoc: gl.GetUniformLocation(prog, gl.Str("ProjMtx\x00")),
		posLoc:     uint32(gl.GetAttribLocation(prog, gl.Str("Position\x00"))),
		uvLoc:      uint32(gl.GetAttribLocation(prog, gl.Str("UV\x00"))),
		colorLoc:   uint32(gl.GetAttribLocation(prog, gl.Str("Color\x00"))),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	stride, posOff, uvOff, colOff := imgui.VertexBufferLayout()
	gl.EnableVertexAttribArray(r.posLoc)
	gl.VertexAttribPointer(r.posLoc, 2, gl.FLOAT, false, int32(stride), gl.PtrOffset(posOff))
	gl.EnableVertexAttribArray(r.uvLoc)
	gl.VertexAttribPointer(r.uvLoc, 2, gl.FLOAT, false, int32(stride), gl.PtrOffset(uvOff))
	gl.EnableVertexAttribArray(r.colorLoc)
	gl.VertexAttribPointer(r.colorLoc, 4, gl.UNSIGNED_BYTE, true, int32(stride), gl.PtrOffset(colOff))
	gl.BindVertexArray(0)

	r.createFontTexture()
	return r, nil
}

func (r *OpenGL3) createFontTexture() {
	fonts := r.io.Fonts()
	image := fonts.TextureDataRGBA32()

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(image.Width), int32(image.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, image.Pixels)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	fonts.SetTextureID(imgui.TextureID(r.fontTexture))
}

// Render draws one frame of UI on top of whatever is in the framebuffer.
func (r *OpenGL3) Render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData) {
	dw, dh := displaySize[0], displaySize[1]
	fw, fh := framebufferSize[0], framebufferSize[1]
	if fw <= 0 || fh <= 0 || dw <= 0 || dh <= 0 || !drawData.Valid() {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{X: fw / dw, Y: fh / dh})

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.Viewport(0, 0, int32(fw), int32(fh))
	ortho := [4][4]float32{
		{2.0 / dw, 0, 0, 0},
		{0, 2.0 / -dh, 0, 0},
		{0, 0, -1, 0},
		{-1, 1, 0, 1},
	}
	gl.UseProgram(r.program)
	gl.Uniform1i(r.texLoc, 0)
	gl.UniformMatrix4fv(r.projMtxLoc, 1, false, &ortho[0][0])
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertices, verticesSize := list.VertexBuffer()
		gl.BufferData(gl.ARRAY_BUFFER, verticesSize, vertices, gl.STREAM_DRAW)
		indices, indicesSize := list.IndexBuffer()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indicesSize, indices, gl.STREAM_DRAW)

		offset := 0
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				clip := cmd.ClipRect()
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				gl.Scissor(int32(clip.X), int32(fh)-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
				gl.DrawElements(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, gl.PtrOffset(offset))
			}
			offset += cmd.ElementCount() * indexSize
		}
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Dispose releases the font texture, buffers and program.
func (r *OpenGL3) Dispose() {
	if r.fontTexture != 0 {
		gl.DeleteTextures(1, &r.fontTexture)
		r.io.Fonts().SetTextureID(0)
		r.fontTexture = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		gl.DeleteBuffers(1, &r.vbo)
		gl.DeleteBuffers(1, &r.ebo)
		r.vao = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
