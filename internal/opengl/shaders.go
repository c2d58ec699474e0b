package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// vertex shader: one transform uniform, color and UV passed through.
const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inColor;
layout(location = 2) in vec2 inUV;

uniform mat4 transform;

out vec3 fragColor;
out vec2 fragUV;

void main() {
    gl_Position = transform * vec4(inPosition, 1.0);
    fragColor   = inColor;
    fragUV      = inUV;
}
` + "\x00"

// fragment shader: flat color, one texture, or three textures mixed by
// weight. correctedBlend drops the extra weight factor of the default mix.
const fragSrc = `
#version 410 core
in vec3 fragColor;
in vec2 fragUV;

out vec4 outColor;

uniform sampler2D texture1;
uniform sampler2D texture2;
uniform sampler2D texture3;

uniform float mixRatio1;
uniform float mixRatio2;
uniform float mixRatio3;

uniform bool useTexture;
uniform bool useMultiTexture;
uniform bool correctedBlend;

void main() {
    if (!useTexture) {
        outColor = vec4(fragColor, 1.0);
        return;
    }
    if (!useMultiTexture) {
        outColor = texture(texture1, fragUV);
        return;
    }

    vec3  w     = vec3(mixRatio1, mixRatio2, mixRatio3);
    float total = w.x + w.y + w.z;
    if (total <= 0.0) {
        outColor = vec4(0.0);
        return;
    }

    vec3 k = w / total;
    if (!correctedBlend) {
        k *= w;
    }
    outColor = texture(texture1, fragUV) * k.x
             + texture(texture2, fragUV) * k.y
             + texture(texture3, fragUV) * k.z;
}
` + "\x00"

// NewProgram compiles and links a program. On failure the program object
// is still returned together with the driver's info log.
func NewProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, vertErr := compileShader(vertSrc, gl.VERTEX_SHADER)
	frag, fragErr := compileShader(fragSrc, gl.FRAGMENT_SHADER)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	if vertErr != nil {
		return prog, fmt.Errorf("vertex: %w", vertErr)
	}
	if fragErr != nil {
		return prog, fmt.Errorf("fragment: %w", fragErr)
	}

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return prog, fmt.Errorf("link failed: %v", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return shader, fmt.Errorf("compile failed: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
