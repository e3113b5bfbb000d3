package vehicle

import (
	"image"
	"math"

	"github.com/golangdaddy/racer/pkg/mask"
)

// Acceleration is the speed change per tick of throttle or reverse
const Acceleration = 0.1

// Car holds the motion state shared by every car on the track.
// Position is the top-left corner of the unrotated sprite, heading is in
// degrees with 0 facing up the screen and positive values turning left.
type Car struct {
	X, Y         float64
	heading      float64
	speed        float64
	MaxSpeed     float64
	TurnRate     float64 // degrees per tick
	Acceleration float64

	start  image.Point
	sprite image.Image
	mask   *mask.Mask
}

func newCar(sprite image.Image, start image.Point, maxSpeed, turnRate float64) Car {
	return Car{
		X:            float64(start.X),
		Y:            float64(start.Y),
		MaxSpeed:     maxSpeed,
		TurnRate:     turnRate,
		Acceleration: Acceleration,
		start:        start,
		sprite:       sprite,
		mask:         mask.FromImage(sprite),
	}
}

// Position returns the top-left corner of the car
func (c *Car) Position() (x, y float64) {
	return c.X, c.Y
}

// Heading returns the heading in degrees
func (c *Car) Heading() float64 {
	return c.heading
}

// Speed returns the speed in pixels per tick
func (c *Car) Speed() float64 {
	return c.speed
}

// Start returns the car's fixed start position
func (c *Car) Start() image.Point {
	return c.start
}

// Sprite returns the unrotated sprite
func (c *Car) Sprite() image.Image {
	return c.sprite
}

// Mask returns the occupancy mask of the unrotated sprite
func (c *Car) Mask() *mask.Mask {
	return c.mask
}

// Bounds returns the sprite rectangle at the car's current position
func (c *Car) Bounds() image.Rectangle {
	b := c.sprite.Bounds()
	x, y := int(c.X), int(c.Y)
	return image.Rect(x, y, x+b.Dx(), y+b.Dy())
}

// Rotate turns the car left or right by its turn rate
func (c *Car) Rotate(left, right bool) {
	if left {
		c.heading += c.TurnRate
	} else if right {
		c.heading -= c.TurnRate
	}
}

// AccelerateForward speeds up toward MaxSpeed and moves the car
func (c *Car) AccelerateForward() {
	c.speed = math.Min(c.speed+c.Acceleration, c.MaxSpeed)
	c.UpdateMotion()
}

// AccelerateBackward slows down, then reverses up to half of MaxSpeed, and moves the car
func (c *Car) AccelerateBackward() {
	c.speed = math.Max(c.speed-c.Acceleration, -c.MaxSpeed/2)
	c.UpdateMotion()
}

// UpdateMotion moves the car one tick along its heading
func (c *Car) UpdateMotion() {
	radians := c.heading * math.Pi / 180
	c.Y -= math.Cos(radians) * c.speed
	c.X -= math.Sin(radians) * c.speed
}

// CollidesWith tests the car's sprite mask against a target mask whose
// top-left corner is at offset. The returned point is in the target's
// coordinates.
func (c *Car) CollidesWith(target *mask.Mask, offset image.Point) (image.Point, bool) {
	rel := image.Pt(int(c.X-float64(offset.X)), int(c.Y-float64(offset.Y)))
	return target.Overlap(c.mask, rel)
}

// ResetState puts the car back on its start position, stopped and facing up
func (c *Car) ResetState() {
	c.X, c.Y = float64(c.start.X), float64(c.start.Y)
	c.heading = 0
	c.speed = 0
}
