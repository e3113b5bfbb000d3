package utils

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ScaleImage resizes an image by a fixed factor.
// Sizes are rounded to the nearest pixel and never drop below 1x1.
//
// Usage Example:
//
//	turf := utils.ScaleImage(tile, 2.5)
func ScaleImage(src image.Image, factor float64) *image.RGBA {
	b := src.Bounds()
	w := int(math.Round(float64(b.Dx()) * factor))
	h := int(math.Round(float64(b.Dy()) * factor))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// Opaque reports whether every pixel of the image has full alpha
func Opaque(img *image.RGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xff {
			return false
		}
	}
	return true
}
