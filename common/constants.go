package common

const (
	// BaseWidth and BaseHeight are the logical render resolution. The
	// playfield spans the whole logical screen.
	BaseWidth  = 960
	BaseHeight = 640

	// TPS is the fixed logic rate the frame-based timers assume.
	TPS = 60
)
