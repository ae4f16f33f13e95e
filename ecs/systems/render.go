package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
)

// SpriteRenderSystem draws the procedural sprites: ship as a stroked
// triangle with a thrust flame, rocks as their jagged outlines, shots
// as filled dots. Layers sort back to front.
type SpriteRenderSystem struct {
	frame int
}

// NewSpriteRenderSystem creates a SpriteRenderSystem.
func NewSpriteRenderSystem() *SpriteRenderSystem {
	return &SpriteRenderSystem{}
}

// Update only advances the flame flicker counter.
func (s *SpriteRenderSystem) Update(w *ecs.World) {
	if s != nil {
		s.frame++
	}
}

type drawable struct {
	tr     *components.Transform
	sprite *components.Sprite
	ship   *components.Ship
}

// Draw renders every visible Transform + Sprite pair.
func (s *SpriteRenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if s == nil || w == nil || screen == nil {
		return
	}
	sprites := w.Sprites()
	trs := w.Transforms()
	ships := w.Ships()

	items := make([]drawable, 0, sprites.Len())
	for _, id := range ecs.IntersectEntities(sprites, trs) {
		sprite, ok := sprites.Get(id).(*components.Sprite)
		if !ok || sprite == nil || sprite.Hidden {
			continue
		}
		tr, ok := trs.Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}
		d := drawable{tr: tr, sprite: sprite}
		if ship, ok := ships.Get(id).(*components.Ship); ok {
			d.ship = ship
		}
		items = append(items, d)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].sprite.Layer < items[j].sprite.Layer
	})

	for _, d := range items {
		switch d.sprite.Kind {
		case components.SpriteShip:
			s.drawShip(screen, d)
		case components.SpriteRock:
			s.drawRock(screen, d)
		case components.SpriteShot:
			s.drawShot(screen, d)
		}
	}
}

func (s *SpriteRenderSystem) drawShip(screen *ebiten.Image, d drawable) {
	col := spriteColor(d.sprite)
	r := d.sprite.Radius

	// nose, rear-left, rear-right in local space
	pts := [][2]float64{
		{0, -r},
		{-r * 0.7, r * 0.8},
		{r * 0.7, r * 0.8},
	}
	strokeLoop(screen, d.tr, pts, col)

	if d.ship != nil && d.ship.Thrusting && (s.frame/3)%2 == 0 {
		flame := [][2]float64{
			{-r * 0.35, r * 0.8},
			{0, r * 1.5},
			{r * 0.35, r * 0.8},
		}
		strokePath(screen, d.tr, flame, col)
	}
}

func (s *SpriteRenderSystem) drawRock(screen *ebiten.Image, d drawable) {
	if len(d.sprite.Points) < 3 {
		return
	}
	strokeLoop(screen, d.tr, d.sprite.Points, spriteColor(d.sprite))
}

func (s *SpriteRenderSystem) drawShot(screen *ebiten.Image, d drawable) {
	r := d.sprite.Radius
	if r <= 0 {
		r = 2
	}
	vector.DrawFilledCircle(screen, float32(d.tr.X), float32(d.tr.Y), float32(r), spriteColor(d.sprite), true)
}

// strokeLoop draws a closed polygon rotated and translated by the
// transform.
func strokeLoop(screen *ebiten.Image, tr *components.Transform, pts [][2]float64, col color.Color) {
	n := len(pts)
	for i := 0; i < n; i++ {
		x0, y0 := rotatePoint(pts[i], tr)
		x1, y1 := rotatePoint(pts[(i+1)%n], tr)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, col, true)
	}
}

// strokePath draws an open polyline rotated and translated by the
// transform.
func strokePath(screen *ebiten.Image, tr *components.Transform, pts [][2]float64, col color.Color) {
	for i := 0; i+1 < len(pts); i++ {
		x0, y0 := rotatePoint(pts[i], tr)
		x1, y1 := rotatePoint(pts[i+1], tr)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, col, true)
	}
}

func rotatePoint(p [2]float64, tr *components.Transform) (float64, float64) {
	sin, cos := math.Sin(tr.Angle), math.Cos(tr.Angle)
	x := p[0]*cos - p[1]*sin
	y := p[0]*sin + p[1]*cos
	return tr.X + x, tr.Y + y
}

func spriteColor(sprite *components.Sprite) color.Color {
	if sprite.Color != nil {
		return sprite.Color
	}
	return color.White
}
