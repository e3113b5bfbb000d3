package game

import (
	"fmt"

	"github.com/golangdaddy/racer/pkg/sound"
	"github.com/golangdaddy/racer/pkg/track"
	"github.com/golangdaddy/racer/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	assets        *track.Assets
	sounds        *sound.Player
	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame builds the track assets and opens on the title screen.
// sounds may be nil to run silently.
func NewGame(def *track.Definition, sounds *sound.Player) (*Game, error) {
	assets, err := track.NewAssets(def)
	if err != nil {
		return nil, fmt.Errorf("failed to build track assets: %w", err)
	}

	game := &Game{
		assets: assets,
		sounds: sounds,
	}
	game.currentScreen = ui.NewTitleScreen(game.startRace)
	return game, nil
}

// startRace transitions from the title screen to the race
func (g *Game) startRace() {
	g.currentScreen = NewGameplayScreen(g.assets, g.sounds)
}

// Size returns the window size, which is the size of the track
func (g *Game) Size() (width, height int) {
	return g.assets.Size()
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.assets.Size()
}
