package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"scene-viewer/internal/logger"
	"scene-viewer/scene"
)

// checkUpload decides whether tex goes to the GPU. Placeholders of failed
// loads are skipped without error and keep handle 0.
func checkUpload(tex *scene.Texture) (bool, error) {
	if !tex.Loaded() {
		return false, nil
	}
	if tex.Width <= 0 || tex.Height <= 0 || len(tex.Pixels) != tex.Width*tex.Height*4 {
		return false, fmt.Errorf("texture %q: %d bytes for %dx%d RGBA", tex.Name, len(tex.Pixels), tex.Width, tex.Height)
	}
	return true, nil
}

// SetTextures uploads the texture set and keeps it for binding by index.
// Any previous set is released first. Call with the context current.
func (r *Renderer) SetTextures(textures []*scene.Texture) {
	r.releaseTextures()
	r.textures = textures

	uploaded := 0
	for i, tex := range textures {
		ok, err := checkUpload(tex)
		if err != nil {
			logger.Log.Error("texture upload skipped",
				zap.Int("index", i), zap.String("name", tex.Name), zap.Error(err))
			continue
		}
		if !ok {
			continue
		}
		tex.GLID = uploadRGBA(tex.Width, tex.Height, tex.Pixels)
		uploaded++
	}
	logger.Log.Debug("texture set uploaded",
		zap.Int("count", len(textures)), zap.Int("uploaded", uploaded))
}

func (r *Renderer) textureID(index int) uint32 {
	if index < 0 || index >= len(r.textures) || r.textures[index] == nil {
		return 0
	}
	return r.textures[index].GLID
}

// releaseTextures deletes every uploaded texture of the set and zeroes
// the handles.
func (r *Renderer) releaseTextures() {
	for _, tex := range r.textures {
		if tex == nil || tex.GLID == 0 {
			continue
		}
		gl.DeleteTextures(1, &tex.GLID)
		tex.GLID = 0
	}
	r.textures = nil
}

// uploadRGBA creates a mipmapped, repeating 2D texture from tightly packed
// RGBA8 rows.
func uploadRGBA(width, height int, pixels []byte) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}
