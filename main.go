package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slimes/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and prefab hot reload")
	demo := flag.Bool("demo", false, "show the animation state demo buttons")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "level1", "level name in levels/ (basename, .json optional)")
	seed := flag.Uint64("seed", 0, "enemy spawner seed (0 picks a random seed)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("slimes")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(Options{
		Level: *levelName,
		Debug: *debug,
		Demo:  *demo,
		Seed:  *seed,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
