package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator creates grass textures drawn behind the track
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateTurf creates a grass field. The same seed always yields the same image.
func (g *Generator) GenerateTurf(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	// Base grass layer
	base := color.RGBA{40, 110, 40, 255}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, base)
		}
	}

	// Mowing stripes
	for y := 0; y < g.Height; y++ {
		if (y/12)%2 == 0 {
			continue
		}
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, color.RGBA{46, 122, 44, 255})
		}
	}

	// Noise
	for i := 0; i < g.Width*g.Height/10; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		shade := uint8(90 + rng.Intn(50))
		img.SetRGBA(x, y, color.RGBA{36, shade, 34, 255})
	}

	// Tufts, denser in waves across the field
	for y := 0; y < g.Height; y += 8 {
		density := 0.3 + 0.2*math.Sin(float64(y)*0.05)
		for x := 0; x < g.Width; x += 6 + rng.Intn(12) {
			if rng.Float64() > density {
				continue
			}
			g.drawTuft(img, x+rng.Intn(6)-3, y+rng.Intn(6)-3, rng)
		}
	}

	return img
}

// drawTuft draws a small round clump of grass
func (g *Generator) drawTuft(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 1 + rng.Intn(3)
	c := color.RGBA{
		uint8(30 + rng.Intn(30)),
		uint8(120 + rng.Intn(50)),
		uint8(30 + rng.Intn(30)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			px, py := x+dx, y+dy
			if px >= 0 && px < g.Width && py >= 0 && py < g.Height {
				img.SetRGBA(px, py, c)
			}
		}
	}
}
