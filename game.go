package main

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/astrodrift/audio"
	"github.com/milk9111/astrodrift/common"
	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/systems"
	"github.com/milk9111/astrodrift/input"
	"github.com/milk9111/astrodrift/prefabs"
)

// Mode is the top-level game state.
type Mode int

const (
	ModeTitle Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

type Game struct {
	mode Mode
	quit bool

	shipSpec *prefabs.ShipSpec
	rockSpec *prefabs.RockSpec
	hudSpec  *prefabs.HUDSpec
	waveSpec *prefabs.WaveSpec

	sounds *audio.Player
	source *input.Source
	rng    *rand.Rand

	playWorld  *ecs.World
	uiWorld    *ecs.World
	waveSystem *systems.WaveSystem

	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(volume float64, seed int64) *Game {
	g := &Game{
		sounds: audio.NewPlayer(volume),
		source: input.NewSource(),
		rng:    rand.New(rand.NewSource(seed)),
	}
	g.loadSpecs()

	// live-tune specs when a disk copy of prefabs/ exists
	if dir, ok := prefabs.DiskDir(); ok {
		watcher, err := prefabs.NewWatcher(dir)
		if err != nil {
			log.Printf("prefabs: watch %s: %v", dir, err)
		} else {
			g.watcher = watcher
		}
	}

	g.pauseUI = NewPauseUI(g)
	g.enterTitle()
	return g
}

// loadSpecs reads all tuning specs. The defaults are embedded in the
// binary, so a load failure is a build defect.
func (g *Game) loadSpecs() {
	ship, err := prefabs.LoadShipSpec()
	if err != nil {
		log.Fatalf("load ship spec: %v", err)
	}
	rock, err := prefabs.LoadRockSpec()
	if err != nil {
		log.Fatalf("load rock spec: %v", err)
	}
	hud, err := prefabs.LoadHUDSpec()
	if err != nil {
		log.Fatalf("load hud spec: %v", err)
	}
	wave, err := prefabs.LoadWaveSpec()
	if err != nil {
		log.Fatalf("load wave spec: %v", err)
	}
	g.shipSpec = ship
	g.rockSpec = rock
	g.hudSpec = hud
	g.waveSpec = wave
}

// reloadSpecs re-reads the specs in place so systems holding the
// pointers pick up the new tuning without a rebuild.
func (g *Game) reloadSpecs() {
	if ship, err := prefabs.LoadShipSpec(); err == nil {
		*g.shipSpec = *ship
	} else {
		log.Printf("reload ship spec: %v", err)
	}
	if rock, err := prefabs.LoadRockSpec(); err == nil {
		*g.rockSpec = *rock
	} else {
		log.Printf("reload rock spec: %v", err)
	}
	if hud, err := prefabs.LoadHUDSpec(); err == nil {
		*g.hudSpec = *hud
	} else {
		log.Printf("reload hud spec: %v", err)
	}
	if wave, err := prefabs.LoadWaveSpec(); err == nil {
		*g.waveSpec = *wave
	} else {
		log.Printf("reload wave spec: %v", err)
	}
	if g.waveSystem != nil {
		g.waveSystem.ReloadScript()
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reloaded := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if !reloaded {
				log.Printf("prefabs: %s changed, reloading", name)
				g.reloadSpecs()
				reloaded = true
			}
		case err := <-g.watcher.Errors:
			log.Printf("prefabs: watch error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.drainWatcher()

	switch g.mode {
	case ModeTitle, ModeGameOver:
		g.uiWorld.Update()
	case ModePlaying:
		g.playWorld.Update()
		if in := g.playWorld.FirstInput(); in != nil && in.PausePressed {
			g.mode = ModePaused
			return nil
		}
		if s := g.playWorld.FirstSession(); s != nil && s.Over {
			g.enterGameOver(s.Score, s.Wave)
		}
	case ModePaused:
		g.pauseUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.mode = ModePlaying
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case ModeTitle, ModeGameOver:
		g.uiWorld.Draw(screen)
	case ModePlaying:
		g.playWorld.Draw(screen)
	case ModePaused:
		g.playWorld.Draw(screen)
		vector.DrawFilledRect(screen, 0, 0, common.BaseWidth, common.BaseHeight,
			color.NRGBA{A: 140}, false)
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
