package main

import (
	"fmt"

	"github.com/milk9111/astrodrift/common"
	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
	"github.com/milk9111/astrodrift/ecs/systems"
)

func (g *Game) enterTitle() {
	g.uiWorld = g.buildScreenWorld([]string{
		"ASTRODRIFT",
		"",
		"TAP OR CLICK TO START",
		"",
		"A/D OR ARROWS TURN",
		"W THRUSTS, SPACE FIRES",
	}, func() {
		g.startRun()
	})
	g.mode = ModeTitle
}

func (g *Game) startRun() {
	g.playWorld = g.buildPlayWorld()
	g.mode = ModePlaying
}

func (g *Game) enterGameOver(score, wave int) {
	g.uiWorld = g.buildScreenWorld([]string{
		"GAME OVER",
		"",
		fmt.Sprintf("SCORE %d", score),
		fmt.Sprintf("REACHED WAVE %d", wave),
		"",
		"TAP OR CLICK TO CONTINUE",
	}, func() {
		g.enterTitle()
	})
	g.mode = ModeGameOver
}

// buildPlayWorld wires a fresh run: the session, the mirrored input
// state, the ship, and the full system order.
func (g *Game) buildPlayWorld() *ecs.World {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())

	playfield := common.Rect{Width: common.BaseWidth, Height: common.BaseHeight}

	session := w.CreateEntity()
	w.SetSession(session, &components.Session{Lives: g.shipSpec.Lives})

	inputEnt := w.CreateEntity()
	w.SetInput(inputEnt, &components.InputState{})

	wrap := systems.NewPlayfieldWrapSystem()
	wrap.SetPlayfield(playfield)
	g.waveSystem = systems.NewWaveSystem(g.waveSpec, g.rockSpec, g.sounds, playfield, g.rng)

	w.AddSystem(systems.NewInputSystem(g.source))
	w.AddSystem(systems.NewShipControlSystem(g.sounds))
	w.AddSystem(systems.NewMovementSystem())
	w.AddSystem(wrap)
	w.AddSystem(systems.NewPhysicsSystem())
	w.AddSystem(systems.NewResolveSystem(g.rockSpec, g.shipSpec, g.sounds, g.rng))
	w.AddSystem(g.waveSystem)
	w.AddSystem(systems.NewLifetimeSystem())
	w.AddSystem(systems.NewHUDSystem(g.hudSpec))
	w.AddSystem(systems.NewSpriteRenderSystem())
	w.AddSystem(systems.NewLabelSystem())

	systems.SpawnShip(w, g.shipSpec, common.BaseWidth/2, common.BaseHeight/2)
	return w
}

// buildScreenWorld wires a static text screen with a full-frame
// touchable that runs onPress.
func (g *Game) buildScreenWorld(lines []string, onPress func()) *ecs.World {
	w := ecs.NewWorld()

	inputEnt := w.CreateEntity()
	w.SetInput(inputEnt, &components.InputState{})

	label := w.CreateEntity()
	w.SetTransform(label, &components.Transform{
		X: common.BaseWidth / 2,
		Y: common.BaseHeight / 2,
	})
	w.SetLabelStack(label, &components.LabelStack{
		Lines:    lines,
		TextSize: 28,
		Layer:    systems.LayerHUD,
	})
	w.SetTouchable(label, &components.Touchable{
		Width:   common.BaseWidth,
		Height:  common.BaseHeight,
		OnTouch: onPress,
	})

	w.AddSystem(systems.NewInputSystem(g.source))
	w.AddSystem(systems.NewTouchSystem())
	w.AddSystem(systems.NewLabelSystem())
	return w
}
