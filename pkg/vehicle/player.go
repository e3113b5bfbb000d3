package vehicle

import (
	"image"
	"math"
)

// Player car handling
const (
	PlayerMaxSpeed = 4.0
	PlayerTurnRate = 4.0
)

// Player is the human driven car
type Player struct {
	Car
}

// NewPlayer creates the player's car at its start position
func NewPlayer(start image.Point) *Player {
	return &Player{Car: newCar(RenderSprite(PlayerColor), start, PlayerMaxSpeed, PlayerTurnRate)}
}

// ApplyFriction slows the car down gradually when no throttle is held.
// Friction never pushes the car into reverse.
func (p *Player) ApplyFriction() {
	p.speed = math.Max(p.speed-p.Acceleration/2, 0)
	p.UpdateMotion()
}

// Bounce reverses the car off a wall for one tick
func (p *Player) Bounce() {
	p.speed = -p.speed
	p.UpdateMotion()
}
