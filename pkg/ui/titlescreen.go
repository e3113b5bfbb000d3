package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen is shown once before the first race
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 35, 20, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing title
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	DrawTextCentered(screen, "RACER", centerX, centerY, 8.0*pulse, color.RGBA{255, 200, 50, 255})

	DrawTextCentered(screen, "Beat the green car around the circuit", centerX, centerY+90, 2.0,
		color.RGBA{180, 200, 180, 255})
	DrawTextCentered(screen, "W/S or Up/Down: throttle and reverse   A/D or Left/Right: steer", centerX, centerY+130, 1.5,
		color.RGBA{150, 170, 150, 255})

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		DrawTextCentered(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-100, 2.0,
			color.RGBA{150, 200, 255, 255})
	}

	drawDecorativeElements(screen, width, height)
}

// drawDecorativeElements draws a chequered band above and below the title
func drawDecorativeElements(screen *ebiten.Image, width, height int) {
	const square = 10
	for _, top := range []int{height / 6, height * 5 / 6} {
		for x := 0; x < width; x += square {
			for row := 0; row < 2; row++ {
				if (x/square+row)%2 != 0 {
					continue
				}
				vector.DrawFilledRect(screen, float32(x), float32(top+row*square), square, square,
					color.RGBA{230, 230, 230, 255}, false)
			}
		}
	}
}
