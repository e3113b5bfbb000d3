package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golangdaddy/racer/pkg/sound"
	"github.com/golangdaddy/racer/pkg/track"
	"github.com/golangdaddy/racer/pkg/ui"
	"github.com/golangdaddy/racer/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// layer is a static image drawn at a fixed screen position
type layer struct {
	img  *ebiten.Image
	x, y float64
}

// GameplayScreen runs the race and draws the track, the HUD and both cars
type GameplayScreen struct {
	race           *Race
	layers         []layer
	playerSprite   *ebiten.Image
	computerSprite *ebiten.Image
	showWaypoints  bool
}

// NewGameplayScreen uploads the track images and wires race events to sounds
func NewGameplayScreen(assets *track.Assets, sounds *sound.Player) *GameplayScreen {
	race := NewRace(assets)
	race.OnEvent(func(e Event) {
		switch e {
		case EventStageStarted:
			sounds.Play(sound.EffectStart)
		case EventBounce:
			sounds.Play(sound.EffectBounce)
		case EventStageCleared:
			sounds.Play(sound.EffectStageCleared)
		case EventLost:
			sounds.Play(sound.EffectLost)
		case EventWon:
			sounds.Play(sound.EffectWon)
		}
	})

	finish := assets.FinishPos
	return &GameplayScreen{
		race: race,
		// Draw order: grass, road, finish line, kerbs
		layers: []layer{
			{ebiten.NewImageFromImage(assets.Turf), 0, 0},
			{ebiten.NewImageFromImage(assets.Track), 0, 0},
			{ebiten.NewImageFromImage(assets.Finish), float64(finish.X), float64(finish.Y)},
			{ebiten.NewImageFromImage(assets.Border), 0, 0},
		},
		playerSprite:   ebiten.NewImageFromImage(race.Player.Sprite()),
		computerSprite: ebiten.NewImageFromImage(race.Computer.Sprite()),
	}
}

// Update handles one tick of input and race logic
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		gs.showWaypoints = !gs.showWaypoints
	}
	gs.race.Update(ReadControls(), AnyKeyJustPressed())
	return nil
}

// Draw renders the gameplay screen
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	for _, l := range gs.layers {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(l.x, l.y)
		screen.DrawImage(l.img, op)
	}

	r := gs.race
	ui.DrawHUD(screen, r.State.Stage, r.State.StageTime(), r.Player.Speed())

	drawCar(screen, gs.playerSprite, r.Player)
	drawCar(screen, gs.computerSprite, r.Computer)

	if gs.showWaypoints {
		gs.drawWaypoints(screen)
	}

	if msg := r.Message(); msg != "" {
		ui.DrawBanner(screen, msg)
	}
}

// drawCar draws a sprite rotated about its centre by the car's heading
func drawCar(screen, sprite *ebiten.Image, car vehicle.Vehicle) {
	w, h := float64(sprite.Bounds().Dx()), float64(sprite.Bounds().Dy())
	x, y := car.Position()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	// Heading turns counter-clockwise on screen, GeoM rotates clockwise.
	op.GeoM.Rotate(-car.Heading() * math.Pi / 180)
	op.GeoM.Translate(x+w/2, y+h/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// drawWaypoints marks the computer's racing line, the next waypoint in yellow
func (gs *GameplayScreen) drawWaypoints(screen *ebiten.Image) {
	c := gs.race.Computer
	for i, p := range c.Waypoints() {
		clr := color.RGBA{255, 0, 0, 255}
		if i == c.WaypointIndex() {
			clr = color.RGBA{255, 230, 0, 255}
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 5, clr, true)
	}
	label := fmt.Sprintf("Waypoint %d/%d  Phase: %s", c.WaypointIndex(), len(c.Waypoints()), gs.race.Phase())
	ebitenutil.DebugPrintAt(screen, label, 10, 10)
}
