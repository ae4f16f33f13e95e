package systems

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
)

// defaultTextSize is the face size used when a label stack sets none.
const defaultTextSize = 20

// LayoutOffsets returns the vertical offset of each of n lines in
// up-positive label space: line i starts at -i*lineHeight (top line
// first, monotonically decreasing), then the whole block is shifted so
// the midpoint between the first and last line is 0. n <= 0 yields an
// empty layout.
func LayoutOffsets(n int, lineHeight float64) []float64 {
	if n <= 0 {
		return nil
	}
	offsets := make([]float64, n)
	for i := 0; i < n; i++ {
		offsets[i] = -float64(i) * lineHeight
	}
	// midpoint of the block before centering
	mid := (offsets[0] + offsets[n-1]) / 2
	for i := range offsets {
		offsets[i] -= mid
	}
	return offsets
}

// LabelSystem draws LabelStack components: one horizontally centered
// text line per entry, the block vertically centered on the entity's
// transform.
type LabelSystem struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewLabelSystem creates a LabelSystem with the bundled face.
func NewLabelSystem() *LabelSystem {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		// goregular is embedded in the binary; failing to parse it is
		// a build defect, not a runtime condition.
		log.Fatalf("label: parse bundled font: %v", err)
	}
	return &LabelSystem{
		source: s,
		faces:  make(map[float64]*text.GoTextFace),
	}
}

// Update is a no-op (labels draw in Draw).
func (s *LabelSystem) Update(w *ecs.World) {}

// Draw renders all entities with Transform + LabelStack.
func (s *LabelSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if s == nil || w == nil || screen == nil {
		return
	}
	labels := w.Labels()
	trs := w.Transforms()

	for _, id := range ecs.IntersectEntities(labels, trs) {
		stack, ok := labels.Get(id).(*components.LabelStack)
		if !ok || stack == nil || len(stack.Lines) == 0 {
			continue
		}
		tr, ok := trs.Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}

		lineHeight := stack.LineHeight
		if lineHeight <= 0 {
			lineHeight = components.DefaultLineHeight
		}
		face := s.face(stack.TextSize)
		offsets := LayoutOffsets(len(stack.Lines), lineHeight)

		for i, line := range stack.Lines {
			if line == "" {
				continue
			}
			op := &text.DrawOptions{}
			op.PrimaryAlign = text.AlignCenter
			op.SecondaryAlign = text.AlignCenter
			// label space is up-positive, screen space is down-positive
			op.GeoM.Translate(tr.X, tr.Y-offsets[i])
			if stack.Color != nil {
				op.ColorScale.ScaleWithColor(stack.Color)
			}
			text.Draw(screen, line, face, op)
		}
	}
}

func (s *LabelSystem) face(size float64) *text.GoTextFace {
	if size <= 0 {
		size = defaultTextSize
	}
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.source, Size: size}
	s.faces[size] = f
	return f
}
