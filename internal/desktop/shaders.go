package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh vertex shader: unit cube scaled and placed by uModel.
const meshVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vNormal;
out vec3 vWorld;

void main() {
    vec4 world = uModel * vec4(aPos, 1.0);
    vWorld = world.xyz;
    vNormal = mat3(uModel) * aNormal;
    gl_Position = uViewProj * world;
}
` + "\x00"

// Mesh fragment shader: half-lambert sun plus distance fog toward the sky.
const meshFragSrc = `#version 410 core

uniform vec3 uColor;
uniform float uAlpha;
uniform vec3 uLightDir;
uniform vec3 uEye;
uniform vec3 uFogColor;
uniform float uFogFar;

in vec3 vNormal;
in vec3 vWorld;
out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    float diff = dot(n, -uLightDir) * 0.5 + 0.5;
    vec3 col = uColor * (0.35 + 0.65 * diff);
    float fog = clamp(length(vWorld - uEye) / uFogFar, 0.0, 1.0);
    FragColor = vec4(mix(col, uFogColor, fog * fog), uAlpha);
}
` + "\x00"

// Particle vertex shader: world-space point sprites sized by distance.
const particleVertSrc = `#version 410 core

layout(location = 0) in vec3 aWorldPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;

uniform mat4 uViewProj;
uniform float uPointScale;

out vec4 vColor;

void main() {
    gl_Position = uViewProj * vec4(aWorldPos, 1.0);
    gl_PointSize = max(1.0, aSize * uPointScale / max(gl_Position.w, 0.1));
    vColor = aColor;
}
` + "\x00"

// Particle fragment shader: round sprite with a soft edge.
const particleFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float d = length(gl_PointCoord - vec2(0.5)) * 2.0;
    if (d > 1.0) discard;
    FragColor = vec4(vColor.rgb, vColor.a * (1.0 - d * d));
}
` + "\x00"

// Overlay vertex shader: screen-space textured quad in pixels.
const overlayVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;

uniform vec2 uResolution;

out vec2 vUV;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
}
` + "\x00"

const overlayFragSrc = `#version 410 core

uniform sampler2D uTex;

in vec2 vUV;
out vec4 FragColor;

void main() {
    vec4 t = texture(uTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = t;
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
