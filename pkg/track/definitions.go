package track

import (
	_ "embed"
	"errors"
	"fmt"
	"image"

	"gopkg.in/yaml.v3"
)

//go:embed track.yaml
var defaultTrack []byte

// Point is a screen coordinate in a track definition
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Image converts the point to an image.Point
func (p Point) Image() image.Point {
	return image.Pt(p.X, p.Y)
}

// Rect is a screen rectangle anchored at its top-left corner
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Image converts the rectangle to an image.Rectangle
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Definition describes the geometry of a track.
// The road surface is laid along the closed loop of waypoints.
type Definition struct {
	Name        string  `yaml:"name"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	RoadWidth   int     `yaml:"roadWidth"`
	BorderWidth int     `yaml:"borderWidth"`
	TurfScale   float64 `yaml:"turfScale"`
	Seed        int64   `yaml:"seed"`

	Finish        Rect    `yaml:"finish"`
	PlayerStart   Point   `yaml:"playerStart"`
	ComputerStart Point   `yaml:"computerStart"`
	Waypoints     []Point `yaml:"waypoints"`
}

// Default returns the built-in track
func Default() (*Definition, error) {
	return Parse(defaultTrack)
}

// Parse decodes and validates a YAML track definition
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse track definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid track definition %q: %w", def.Name, err)
	}
	return &def, nil
}

// Validate checks that the definition describes a usable track
func (d *Definition) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("track size must be positive, got %dx%d", d.Width, d.Height)
	}
	if d.RoadWidth <= 0 {
		return fmt.Errorf("roadWidth must be positive, got %d", d.RoadWidth)
	}
	if d.BorderWidth <= 0 {
		return fmt.Errorf("borderWidth must be positive, got %d", d.BorderWidth)
	}
	if d.TurfScale <= 0 {
		return fmt.Errorf("turfScale must be positive, got %v", d.TurfScale)
	}
	if len(d.Waypoints) < 2 {
		return errors.New("at least two waypoints are required")
	}

	area := d.Bounds()
	if d.Finish.Width <= 0 || d.Finish.Height <= 0 {
		return fmt.Errorf("finish size must be positive, got %dx%d", d.Finish.Width, d.Finish.Height)
	}
	if !d.Finish.Image().In(area) {
		return fmt.Errorf("finish %v lies outside the track area %v", d.Finish.Image(), area)
	}
	if !d.PlayerStart.Image().In(area) {
		return fmt.Errorf("player start %v lies outside the track area", d.PlayerStart.Image())
	}
	if !d.ComputerStart.Image().In(area) {
		return fmt.Errorf("computer start %v lies outside the track area", d.ComputerStart.Image())
	}
	for i, wp := range d.Waypoints {
		if !wp.Image().In(area) {
			return fmt.Errorf("waypoint %d %v lies outside the track area", i, wp.Image())
		}
	}
	return nil
}

// Bounds returns the track area
func (d *Definition) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Width, d.Height)
}

// WaypointPath returns the waypoints as image points, in driving order
func (d *Definition) WaypointPath() []image.Point {
	path := make([]image.Point, len(d.Waypoints))
	for i, wp := range d.Waypoints {
		path[i] = wp.Image()
	}
	return path
}
