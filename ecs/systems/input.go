package systems

import (
	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/input"
)

// InputSystem mirrors the polled hardware snapshot into the world's
// InputState component so every other system reads input the same way.
type InputSystem struct {
	Source *input.Source
}

// NewInputSystem creates an InputSystem.
func NewInputSystem(source *input.Source) *InputSystem {
	return &InputSystem{Source: source}
}

// Update polls the source into the first InputState component.
func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || s.Source == nil || w == nil {
		return
	}
	state := firstInput(w)
	if state == nil {
		return
	}
	s.Source.Poll(state)
}
