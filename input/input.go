// Package input polls ebiten's keyboard, mouse, and touch state into a
// plain snapshot each frame so game systems stay backend-free.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/astrodrift/ecs/components"
)

// Source polls the hardware once per frame.
type Source struct {
	touchIDs []ebiten.TouchID
}

// NewSource creates a Source.
func NewSource() *Source {
	return &Source{}
}

// Poll reads the current hardware state into dst.
func (s *Source) Poll(dst *components.InputState) {
	if s == nil || dst == nil {
		return
	}

	dst.TurnAxis = 0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dst.TurnAxis -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dst.TurnAxis += 1
	}

	dst.ThrustHeld = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	dst.FireHeld = ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	dst.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyP)

	dst.PressStarted = false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst.PressStarted = true
		dst.PressX = float64(x)
		dst.PressY = float64(y)
	}

	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(s.touchIDs[0])
		dst.PressStarted = true
		dst.PressX = float64(x)
		dst.PressY = float64(y)
	}
}
