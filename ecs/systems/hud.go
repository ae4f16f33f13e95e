package systems

import (
	"fmt"

	"github.com/milk9111/astrodrift/common"
	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
	"github.com/milk9111/astrodrift/prefabs"
)

// HUDSystem keeps the score, lives, and wave readouts in sync with the
// session. It owns its three label entities and creates them on the
// first update.
type HUDSystem struct {
	Spec *prefabs.HUDSpec

	built bool
	score ecs.Entity
	lives ecs.Entity
	wave  ecs.Entity
}

// NewHUDSystem creates a HUDSystem.
func NewHUDSystem(spec *prefabs.HUDSpec) *HUDSystem {
	return &HUDSystem{Spec: spec}
}

// Update refreshes the readout labels from the session.
func (s *HUDSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	session := w.FirstSession()
	if session == nil {
		return
	}
	if !s.built {
		s.build(w)
	}

	if label := w.GetLabelStack(s.score); label != nil {
		label.Lines = []string{fmt.Sprintf("SCORE %d", session.Score)}
	}
	if label := w.GetLabelStack(s.lives); label != nil {
		label.Lines = []string{fmt.Sprintf("SHIPS %d", session.Lives)}
	}
	if label := w.GetLabelStack(s.wave); label != nil {
		if session.Wave > 0 {
			label.Lines = []string{fmt.Sprintf("WAVE %d", session.Wave)}
		} else {
			label.Lines = nil
		}
	}
}

func (s *HUDSystem) build(w *ecs.World) {
	margin := 24.0
	textSize := 0.0
	lineHeight := 0.0
	var col *prefabs.YAMLColor
	if s.Spec != nil {
		if s.Spec.Margin > 0 {
			margin = s.Spec.Margin
		}
		textSize = s.Spec.TextSize
		lineHeight = s.Spec.LineHeight
		col = s.Spec.Color
	}

	s.score = s.newLabel(w, margin*3, margin, textSize, lineHeight, col)
	s.lives = s.newLabel(w, common.BaseWidth-margin*3, margin, textSize, lineHeight, col)
	s.wave = s.newLabel(w, common.BaseWidth/2, margin, textSize, lineHeight, col)
	s.built = true
}

func (s *HUDSystem) newLabel(w *ecs.World, x, y, textSize, lineHeight float64, col *prefabs.YAMLColor) ecs.Entity {
	e := w.CreateEntity()
	w.SetTransform(e, &components.Transform{X: x, Y: y})
	w.SetLabelStack(e, &components.LabelStack{
		TextSize:   textSize,
		LineHeight: lineHeight,
		Color:      col,
		Layer:      LayerHUD,
	})
	return e
}
