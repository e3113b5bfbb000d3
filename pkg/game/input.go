package game

import (
	"github.com/golangdaddy/racer/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Controls is the set of driving actions held during one tick
type Controls struct {
	Left     bool
	Right    bool
	Forward  bool
	Backward bool
}

// ReadControls reads the held driving keys. WASD and the arrow keys both drive.
func ReadControls() Controls {
	return Controls{
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
}

// AnyKeyJustPressed reports whether any key went down this tick
func AnyKeyJustPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}

// ApplyControls drives the player's car for one tick. Friction applies when
// neither throttle nor reverse is held.
func ApplyControls(player *vehicle.Player, c Controls) {
	if c.Left {
		player.Rotate(true, false)
	}
	if c.Right {
		player.Rotate(false, true)
	}

	moved := false
	if c.Forward {
		moved = true
		player.AccelerateForward()
	}
	if c.Backward {
		moved = true
		player.AccelerateBackward()
	}

	if !moved {
		player.ApplyFriction()
	}
}
