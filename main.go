package main

import (
	"log"

	"github.com/golangdaddy/racer/pkg/game"
	"github.com/golangdaddy/racer/pkg/sound"
	"github.com/golangdaddy/racer/pkg/track"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	windowTitle = "Racing Game!"
	ticksPerSec = 60
)

func main() {
	def, err := track.Default()
	if err != nil {
		log.Fatal(err)
	}

	sounds := sound.NewPlayer(audio.NewContext(sound.SampleRate))

	g, err := game.NewGame(def, sounds)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded track %q (%d waypoints)", def.Name, len(def.Waypoints))

	width, height := g.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(ticksPerSec)
	// Call ebiten.RunGame to start your game loop.
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
