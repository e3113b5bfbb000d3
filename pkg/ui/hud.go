package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const hudScale = 2.0

// HUDLines formats the stage, the stage clock and the player's speed
func HUDLines(stage, seconds int, speed float64) [3]string {
	return [3]string{
		fmt.Sprintf("Level %d", stage),
		fmt.Sprintf("Time: %ds", seconds),
		fmt.Sprintf("Vel: %.1fpx/s", math.Round(speed*10)/10),
	}
}

// DrawHUD draws the HUD lines stacked in the bottom-left corner
func DrawHUD(screen *ebiten.Image, stage, seconds int, speed float64) {
	height := float64(screen.Bounds().Dy())
	lines := HUDLines(stage, seconds, speed)
	offsets := [3]float64{70, 40, 10}

	white := color.RGBA{255, 255, 255, 255}
	for i, line := range lines {
		_, h := TextSize(line, hudScale)
		DrawText(screen, line, 10, height-h-offsets[i], hudScale, white)
	}
}
