package game

// Controls is one frame of player intent, filled by whichever front end is
// driving the game.
type Controls struct {
	// Held this frame.
	Forward, Back bool
	Left, Right   bool // strafe, or rotate in crazy mode
	Boost         bool
	Jump          bool
	MouseDX       float64 // horizontal look delta in pixels

	// Edge-triggered: true only on the frame the key went down.
	Restart     bool
	ToggleCrazy bool
	CameraFirst bool
	CameraThird bool
}
