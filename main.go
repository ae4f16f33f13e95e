package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/astrodrift/common"
)

func main() {
	volume := flag.Float64("volume", 0.8, "sound effect volume, 0 to 1")
	seed := flag.Int64("seed", 0, "rock generation seed (0 seeds from the clock)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("astrodrift")
	ebiten.SetTPS(common.TPS)

	game := NewGame(common.Clamp(*volume, 0, 1), *seed)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
