package desktop

import (
	"fmt"
	"image"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"snakecity/internal/game"
)

const (
	fieldOfView = 60.0 // vertical, degrees
	nearPlane   = 0.1
	farPlane    = 400.0
	fogFar      = 140.0
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

func vec32(v game.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

type Renderer struct {
	// Box program.
	meshProg  uint32
	cubeVAO   uint32
	cubeVBO   uint32
	cubeVerts int32

	uViewProj int32
	uModel    int32
	uColor    int32
	uAlpha    int32
	uLightDir int32
	uEye      int32
	uFogColor int32
	uFogFar   int32

	// Particle program.
	pointProg     uint32
	pointVAO      uint32
	pointVBO      uint32
	ptUViewProj   int32
	ptUPointScale int32

	// HUD overlay.
	overlayProg uint32
	overlayVAO  uint32
	overlayVBO  uint32
	overlayTex  uint32
	ovURes      int32
	ovUTex      int32

	viewProj   mgl32.Mat4
	pointScale float32
}

func NewRenderer() (*Renderer, error) {
	meshProg, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	pointProg, err := linkProgram(particleVertSrc, particleFragSrc)
	if err != nil {
		gl.DeleteProgram(meshProg)
		return nil, fmt.Errorf("particle program: %w", err)
	}
	overlayProg, err := linkProgram(overlayVertSrc, overlayFragSrc)
	if err != nil {
		gl.DeleteProgram(meshProg)
		gl.DeleteProgram(pointProg)
		return nil, fmt.Errorf("overlay program: %w", err)
	}

	r := &Renderer{
		meshProg:    meshProg,
		pointProg:   pointProg,
		overlayProg: overlayProg,
	}

	// Cube VAO/VBO: 36 vertices of pos(3) + normal(3).
	verts := cubeVertices()
	r.cubeVerts = int32(len(verts) / 6)
	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindVertexArray(r.cubeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(&verts[0]), gl.STATIC_DRAW)
	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))

	gl.UseProgram(meshProg)
	r.uViewProj = gl.GetUniformLocation(meshProg, gl.Str("uViewProj\x00"))
	r.uModel = gl.GetUniformLocation(meshProg, gl.Str("uModel\x00"))
	r.uColor = gl.GetUniformLocation(meshProg, gl.Str("uColor\x00"))
	r.uAlpha = gl.GetUniformLocation(meshProg, gl.Str("uAlpha\x00"))
	r.uLightDir = gl.GetUniformLocation(meshProg, gl.Str("uLightDir\x00"))
	r.uEye = gl.GetUniformLocation(meshProg, gl.Str("uEye\x00"))
	r.uFogColor = gl.GetUniformLocation(meshProg, gl.Str("uFogColor\x00"))
	r.uFogFar = gl.GetUniformLocation(meshProg, gl.Str("uFogFar\x00"))
	light := mgl32.Vec3{-0.4, -1, -0.3}.Normalize()
	gl.Uniform3f(r.uLightDir, light[0], light[1], light[2])
	gl.Uniform1f(r.uFogFar, fogFar)

	// Particle VAO/VBO: streaming [x, y, z, size, r, g, b, a] per point.
	gl.GenVertexArrays(1, &r.pointVAO)
	gl.GenBuffers(1, &r.pointVBO)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	stride = int32(8 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	gl.UseProgram(pointProg)
	r.ptUViewProj = gl.GetUniformLocation(pointProg, gl.Str("uViewProj\x00"))
	r.ptUPointScale = gl.GetUniformLocation(pointProg, gl.Str("uPointScale\x00"))

	// Overlay VAO/VBO: pos(2) + uv(2), one quad.
	gl.GenVertexArrays(1, &r.overlayVAO)
	gl.GenBuffers(1, &r.overlayVBO)
	gl.BindVertexArray(r.overlayVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	stride = int32(4 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))

	gl.UseProgram(overlayProg)
	r.ovURes = gl.GetUniformLocation(overlayProg, gl.Str("uResolution\x00"))
	r.ovUTex = gl.GetUniformLocation(overlayProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.ovUTex, 0)

	gl.GenTextures(1, &r.overlayTex)
	gl.BindTexture(gl.TEXTURE_2D, r.overlayTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.cubeVBO, r.pointVBO, r.overlayVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.cubeVAO, r.pointVAO, r.overlayVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.meshProg, r.pointProg, r.overlayProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.overlayTex != 0 {
		gl.DeleteTextures(1, &r.overlayTex)
	}
}

// viewProjection builds the camera matrix. X is mirrored because the game's
// right vector is +X when facing +Z, the opposite of a right-handed view.
func viewProjection(eye, target game.Vec3, aspect float32) mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(fieldOfView), aspect, nearPlane, farPlane)
	view := mgl32.LookAtV(vec32(eye), vec32(target), mgl32.Vec3{0, 1, 0})
	return mgl32.Scale3D(-1, 1, 1).Mul4(proj).Mul4(view)
}

func (r *Renderer) BeginFrame(cam *game.Camera, fbW, fbH int, sky game.RGB) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	sr, sg, sb := sky.Floats()
	gl.ClearColor(sr, sg, sb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	eye, target := cam.View()
	r.viewProj = viewProjection(eye, target, float32(fbW)/float32(fbH))
	r.pointScale = float32(float64(fbH) / (2 * math.Tan(fieldOfView*math.Pi/360)))

	gl.UseProgram(r.meshProg)
	gl.UniformMatrix4fv(r.uViewProj, 1, false, &r.viewProj[0])
	e := vec32(eye)
	gl.Uniform3f(r.uEye, e[0], e[1], e[2])
	gl.Uniform3f(r.uFogColor, sr, sg, sb)
	gl.BindVertexArray(r.cubeVAO)
}

// DrawBox draws an axis-aligned box of the given full size centred at c,
// turned by yaw about Y.
func (r *Renderer) DrawBox(c, size game.Vec3, yaw float64, col game.RGB, alpha float32) {
	model := mgl32.Translate3D(float32(c[0]), float32(c[1]), float32(c[2])).
		Mul4(mgl32.HomogRotate3DY(float32(yaw))).
		Mul4(mgl32.Scale3D(float32(size[0]), float32(size[1]), float32(size[2])))
	cr, cg, cb := col.Floats()
	gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
	gl.Uniform3f(r.uColor, cr, cg, cb)
	gl.Uniform1f(r.uAlpha, alpha)
	gl.DrawArrays(gl.TRIANGLES, 0, r.cubeVerts)
}

// DrawParticles draws packed [x, y, z, size, r, g, b, a] points.
func (r *Renderer) DrawParticles(buf []float32) {
	if len(buf) == 0 {
		return
	}
	gl.DepthMask(false)
	gl.UseProgram(r.pointProg)
	gl.UniformMatrix4fv(r.ptUViewProj, 1, false, &r.viewProj[0])
	gl.Uniform1f(r.ptUPointScale, r.pointScale)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(len(buf)/8))
	gl.DepthMask(true)

	gl.UseProgram(r.meshProg)
	gl.BindVertexArray(r.cubeVAO)
}

// SetOverlay uploads a new HUD image.
func (r *Renderer) SetOverlay(img *image.RGBA) {
	b := img.Bounds()
	gl.BindTexture(gl.TEXTURE_2D, r.overlayTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

// DrawOverlay stretches the HUD image over the whole framebuffer.
func (r *Renderer) DrawOverlay(fbW, fbH int) {
	w, h := float32(fbW), float32(fbH)
	quad := [24]float32{
		0, 0, 0, 0,
		w, 0, 1, 0,
		0, h, 0, 1,
		w, 0, 1, 0,
		w, h, 1, 1,
		0, h, 0, 1,
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(r.overlayProg)
	gl.Uniform2f(r.ovURes, w, h)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.overlayTex)
	gl.BindVertexArray(r.overlayVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*4, gl.Ptr(&quad[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.Enable(gl.DEPTH_TEST)
}

// cubeVertices returns a unit cube centred at the origin as triangles of
// position and face normal.
func cubeVertices() []float32 {
	faces := []struct {
		n    [3]float32
		u, v [3]float32
	}{
		{[3]float32{1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{[3]float32{0, 0, 1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
	}
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}
	out := make([]float32, 0, 36*6)
	for _, f := range faces {
		for _, c := range corners {
			for i := 0; i < 3; i++ {
				out = append(out, 0.5*(f.n[i]+c[0]*f.u[i]+c[1]*f.v[i]))
			}
			out = append(out, f.n[0], f.n[1], f.n[2])
		}
	}
	return out
}
