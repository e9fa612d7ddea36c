// Package desktop is the windowed OpenGL front end.
package desktop

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"snakecity/internal/config"
	"snakecity/internal/game"
)

// Run opens a window and plays until it is closed or Escape is pressed.
func Run(cfg *config.Config, tables *game.Tables, seed uint64) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Printf("desktop: OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Disable(gl.CULL_FACE) // the mirrored projection flips winding
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	hud := &game.HUDState{}
	g := game.NewGame(cfg.Game, tables, seed, hud)
	game.LogEvents(g.Events)
	input := NewInput()
	var overlay Overlay
	var particleBuf []float32

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		g.Update(dt, input.Controls(window))
		hud.Tick(dt)

		rend.BeginFrame(g.Camera, fbW, fbH, skyColor)
		drawScene(rend, g, now)
		particleBuf = g.Particles.RenderData(particleBuf)
		rend.DrawParticles(particleBuf)

		if overlay.Update(hud.Lines(), fbW, fbH) {
			rend.SetOverlay(overlay.Image())
		}
		rend.DrawOverlay(fbW, fbH)

		window.SwapBuffers()
	}
	log.Printf("desktop: closed after run %d, best score %d", g.Session.Run, g.Session.BestScore)
	return nil
}
