package track

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/golangdaddy/racer/pkg/background"
	"github.com/golangdaddy/racer/pkg/mask"
	"github.com/golangdaddy/racer/pkg/utils"
)

// Assets holds the images and masks of a track. They are built once and
// never modified afterwards.
type Assets struct {
	Definition *Definition

	Turf   *image.RGBA // grass behind everything, may extend past the track area
	Track  *image.RGBA // road surface, transparent elsewhere
	Border *image.RGBA // kerbs along both road edges, transparent elsewhere
	Finish *image.RGBA // finish strip, drawn at FinishPos

	BorderMask *mask.Mask // anchored at (0, 0)
	FinishMask *mask.Mask // anchored at FinishPos
	FinishPos  image.Point
}

// NewAssets generates every image and mask for a track definition
func NewAssets(def *Definition) (*Assets, error) {
	if def == nil {
		return nil, fmt.Errorf("track definition is nil")
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid track definition %q: %w", def.Name, err)
	}

	a := &Assets{
		Definition: def,
		FinishPos:  def.Finish.Image().Min,
	}
	a.Turf = generateTurf(def)
	a.Track, a.Border = generateRoad(def)
	a.Finish = generateFinish(def.Finish.Width, def.Finish.Height)

	a.BorderMask = mask.FromImage(a.Border)
	a.FinishMask = mask.FromImage(a.Finish)
	return a, nil
}

// Size returns the track area size, which is also the window size
func (a *Assets) Size() (width, height int) {
	return a.Definition.Width, a.Definition.Height
}

// generateTurf draws a grass tile at reduced size and scales it up so the
// texture gets coarse blades, like a photo of grass blown up.
func generateTurf(def *Definition) *image.RGBA {
	w := int(math.Ceil(float64(def.Width) / def.TurfScale))
	h := int(math.Ceil(float64(def.Height) / def.TurfScale))
	tile := background.NewGenerator(w, h).GenerateTurf(def.Seed)
	return utils.ScaleImage(tile, def.TurfScale)
}

// generateRoad lays the road surface and its kerbs along the closed waypoint
// loop. A pixel is road when it lies within half the road width of the loop,
// and kerb when it lies within the next BorderWidth pixels.
func generateRoad(def *Definition) (surface, border *image.RGBA) {
	bounds := def.Bounds()
	surface = image.NewRGBA(bounds)
	border = image.NewRGBA(bounds)
	rng := rand.New(rand.NewSource(def.Seed))

	half := float64(def.RoadWidth) / 2
	outer := half + float64(def.BorderWidth)
	path := def.WaypointPath()

	// Only pixels near the loop need a distance test.
	reach := int(math.Ceil(outer)) + 1
	area := image.Rectangle{}
	for i, p := range path {
		r := image.Rect(p.X-reach, p.Y-reach, p.X+reach+1, p.Y+reach+1)
		if i == 0 {
			area = r
		} else {
			area = area.Union(r)
		}
	}
	area = area.Intersect(bounds)

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			d := distanceToLoop(float64(x)+0.5, float64(y)+0.5, path)
			switch {
			case d <= half:
				shade := uint8(88 + rng.Intn(12))
				surface.SetRGBA(x, y, color.RGBA{shade, shade, shade + 4, 255})
			case d <= outer:
				border.SetRGBA(x, y, kerbColor(x, y))
			}
		}
	}
	return surface, border
}

// kerbColor alternates red and white blocks along the kerb
func kerbColor(x, y int) color.RGBA {
	if ((x/8)+(y/8))%2 == 0 {
		return color.RGBA{200, 30, 30, 255}
	}
	return color.RGBA{240, 240, 240, 255}
}

// generateFinish draws a black and white chequered strip
func generateFinish(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	const square = 4
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/square)+(y/square))%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{250, 250, 250, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{15, 15, 15, 255})
			}
		}
	}
	return img
}

// distanceToLoop returns the distance from (x, y) to the closed polyline
// through the points.
func distanceToLoop(x, y float64, path []image.Point) float64 {
	best := math.Inf(1)
	for i := range path {
		a := path[i]
		b := path[(i+1)%len(path)]
		if d := distanceToSegment(x, y, float64(a.X), float64(a.Y), float64(b.X), float64(b.Y)); d < best {
			best = d
		}
	}
	return best
}

func distanceToSegment(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	lengthSq := dx*dx + dy*dy
	t := 0.0
	if lengthSq > 0 {
		t = ((px-ax)*dx + (py-ay)*dy) / lengthSq
		t = math.Max(0, math.Min(1, t))
	}
	cx, cy := ax+t*dx, ay+t*dy
	return math.Hypot(px-cx, py-cy)
}
