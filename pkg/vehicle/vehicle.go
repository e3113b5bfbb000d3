package vehicle

import (
	"image"

	"github.com/golangdaddy/racer/pkg/mask"
)

// Vehicle is anything that drives on the track and can be drawn
type Vehicle interface {
	Position() (x, y float64)
	Heading() float64
	Speed() float64
	Sprite() image.Image
	CollidesWith(target *mask.Mask, offset image.Point) (image.Point, bool)
	ResetState()
}

var (
	_ Vehicle = (*Player)(nil)
	_ Vehicle = (*Computer)(nil)
)
