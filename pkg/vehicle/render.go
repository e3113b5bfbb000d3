package vehicle

import (
	"image"
	"image/color"

	"github.com/golangdaddy/racer/pkg/utils"
)

// Sprite dimensions before scaling
const (
	spriteWidth  = 36
	spriteHeight = 68

	// SpriteScale shrinks the drawn sprite to its on-track size
	SpriteScale = 0.55
)

// Car paint colours
var (
	PlayerColor   = color.RGBA{210, 30, 30, 255}
	ComputerColor = color.RGBA{30, 160, 60, 255}
)

// RenderSprite draws a top-down car facing up (bonnet at the top) and scales
// it down to track size.
func RenderSprite(body color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, spriteWidth, spriteHeight))

	fill := func(x0, y0, x1, y1 int, c color.RGBA) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}

	// Wheels sit slightly outside the body
	wheel := color.RGBA{30, 30, 30, 255}
	fill(0, 8, 6, 20, wheel)
	fill(spriteWidth-6, 8, spriteWidth, 20, wheel)
	fill(0, spriteHeight-20, 6, spriteHeight-8, wheel)
	fill(spriteWidth-6, spriteHeight-20, spriteWidth, spriteHeight-8, wheel)

	// Body with a dark outline
	outline := color.RGBA{20, 20, 20, 255}
	fill(3, 0, spriteWidth-3, spriteHeight, outline)
	fill(5, 2, spriteWidth-5, spriteHeight-2, body)

	// Roof, slightly darker than the paint
	roof := color.RGBA{body.R * 4 / 5, body.G * 4 / 5, body.B * 4 / 5, 255}
	fill(8, 22, spriteWidth-8, 46, roof)

	// Windshield at the front, rear window behind the roof
	glass := color.RGBA{150, 200, 255, 255}
	fill(8, 14, spriteWidth-8, 22, glass)
	fill(9, 46, spriteWidth-9, 51, glass)

	// Headlights and taillights
	head := color.RGBA{255, 255, 140, 255}
	fill(7, 2, 12, 5, head)
	fill(spriteWidth-12, 2, spriteWidth-7, 5, head)
	tail := color.RGBA{255, 40, 40, 255}
	fill(7, spriteHeight-5, 12, spriteHeight-2, tail)
	fill(spriteWidth-12, spriteHeight-5, spriteWidth-7, spriteHeight-2, tail)

	return utils.ScaleImage(img, SpriteScale)
}
