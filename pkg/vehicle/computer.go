package vehicle

import (
	"image"
	"math"
)

// Computer car handling
const (
	ComputerMaxSpeed = 2.0
	ComputerTurnRate = 4.0

	// StageSpeedStep is added to the computer's speed for every stage past the first
	StageSpeedStep = 0.2
)

// Computer is the AI car. It steers toward each waypoint in turn and stops
// steering once the last one is reached.
type Computer struct {
	Car
	waypoints []image.Point
	index     int
}

// NewComputer creates the AI car at its start position, already rolling at
// its first stage speed.
func NewComputer(start image.Point, waypoints []image.Point) *Computer {
	c := &Computer{
		Car:       newCar(RenderSprite(ComputerColor), start, ComputerMaxSpeed, ComputerTurnRate),
		waypoints: waypoints,
	}
	c.speed = c.MaxSpeed
	return c
}

// Waypoints returns the racing line
func (c *Computer) Waypoints() []image.Point {
	return c.waypoints
}

// WaypointIndex returns the index of the waypoint being steered toward
func (c *Computer) WaypointIndex() int {
	return c.index
}

// Finished reports whether every waypoint has been reached
func (c *Computer) Finished() bool {
	return c.index >= len(c.waypoints)
}

// ComputeAngle turns the car toward the current waypoint by at most TurnRate
func (c *Computer) ComputeAngle() {
	target := c.waypoints[c.index]
	tx, ty := float64(target.X), float64(target.Y)
	dx := tx - c.X
	dy := ty - c.Y

	var desired float64
	if dy == 0 {
		desired = math.Pi / 2
	} else {
		desired = math.Atan(dx / dy)
	}
	if ty > c.Y {
		desired += math.Pi
	}

	delta := c.heading - desired*180/math.Pi
	if delta >= 180 {
		delta -= 360
	}

	if delta > 0 {
		c.heading -= math.Min(c.TurnRate, math.Abs(delta))
	} else {
		c.heading += math.Min(c.TurnRate, math.Abs(delta))
	}
}

// AdvanceWaypoint moves on to the next waypoint once the sprite rectangle
// covers the current one.
func (c *Computer) AdvanceWaypoint() {
	if c.Finished() {
		return
	}
	if c.waypoints[c.index].In(c.Bounds()) {
		c.index++
	}
}

// UpdateMotion steers and moves the car one tick. It does nothing once the
// last waypoint is reached.
func (c *Computer) UpdateMotion() {
	if c.Finished() {
		return
	}
	c.ComputeAngle()
	c.AdvanceWaypoint()
	c.Car.UpdateMotion()
}

// AdvanceLevel puts the car back on the start line with the speed of the
// given stage.
func (c *Computer) AdvanceLevel(stage int) {
	c.ResetState()
	c.speed = c.MaxSpeed + float64(stage-1)*StageSpeedStep
	c.index = 0
}
