package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"snakecity/internal/game"
)

type Input struct {
	prevKeys    map[glfw.Key]bool
	prevCursorX float64
	cursorSeen  bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func held(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Controls samples the keyboard and mouse for one frame.
func (in *Input) Controls(window *glfw.Window) game.Controls {
	c := game.Controls{
		Forward: held(window, glfw.KeyW, glfw.KeyUp),
		Back:    held(window, glfw.KeyS, glfw.KeyDown),
		Left:    held(window, glfw.KeyA, glfw.KeyLeft),
		Right:   held(window, glfw.KeyD, glfw.KeyRight),
		Boost:   held(window, glfw.KeyLeftShift, glfw.KeyRightShift),
		Jump:    held(window, glfw.KeySpace),

		Restart:     in.JustPressed(window, glfw.KeyR),
		ToggleCrazy: in.JustPressed(window, glfw.KeyC),
		CameraFirst: in.JustPressed(window, glfw.Key1),
		CameraThird: in.JustPressed(window, glfw.Key3),
	}

	cx, _ := window.GetCursorPos()
	if in.cursorSeen {
		c.MouseDX = cx - in.prevCursorX
	}
	in.prevCursorX, in.cursorSeen = cx, true
	return c
}
