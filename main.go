package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (fps overlay, pose transition logging)")
	labels := flag.Bool("labels", false, "show keypoint labels")
	cpu := flag.Bool("cpu", true, "spawn the scripted cpu fighter on the right half")
	width := flag.Int("width", 0, "window width (defaults to prefabs/arena.yaml)")
	height := flag.Int("height", 0, "window height (defaults to prefabs/arena.yaml)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Options{
		Debug:      *debug,
		ShowLabels: *labels,
		CPU:        *cpu,
		Width:      *width,
		Height:     *height,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.WindowSize()
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("stickfighter")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
