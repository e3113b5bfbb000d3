package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var face = text.NewGoXFace(bitmapfont.Face)

// lineHeight is the unscaled height of one line of the bitmap font
func lineHeight() float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent
}

// TextSize returns the size of str drawn at the given scale
func TextSize(str string, scale float64) (width, height float64) {
	return text.Advance(str, face) * scale, lineHeight() * scale
}

// DrawText draws str with its top-left corner at (x, y)
func DrawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawTextCentered draws str centred on (centerX, centerY)
func DrawTextCentered(screen *ebiten.Image, str string, centerX, centerY, scale float64, clr color.Color) {
	w, h := TextSize(str, scale)
	DrawText(screen, str, centerX-w/2, centerY-h/2, scale, clr)
}

// DrawBanner draws a message in the middle of the screen on a dark band
func DrawBanner(screen *ebiten.Image, msg string) {
	const scale = 3.0
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	w, h := TextSize(msg, scale)

	cx, cy := float64(width)/2, float64(height)/2
	pad := 16.0
	vector.DrawFilledRect(screen,
		float32(cx-w/2-pad), float32(cy-h/2-pad),
		float32(w+2*pad), float32(h+2*pad),
		color.RGBA{20, 20, 30, 200}, false)
	DrawTextCentered(screen, msg, cx, cy, scale, color.RGBA{255, 200, 50, 255})
}
