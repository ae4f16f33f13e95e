package components

// InputState mirrors polled hardware input into the ECS so systems
// never touch the input backend directly.
type InputState struct {
	TurnAxis   float64 // -1 left, 0 none, +1 right
	ThrustHeld bool
	FireHeld   bool

	// PressStarted is true only on the frame a mouse button or touch
	// began; PressX/PressY hold that point in logical screen units.
	PressStarted bool
	PressX       float64
	PressY       float64

	PausePressed bool
}
