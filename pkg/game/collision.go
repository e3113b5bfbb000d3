package game

import (
	"image"

	"github.com/golangdaddy/racer/pkg/models"
	"github.com/golangdaddy/racer/pkg/track"
	"github.com/golangdaddy/racer/pkg/vehicle"
)

// CollisionResult reports what the collision handler did in one tick
type CollisionResult struct {
	Bounced      bool // the player bounced off the border or the back of the finish line
	Lost         bool // the computer crossed the finish line, the race was reset
	StageCleared bool // the player crossed the finish line, the race moved to the next stage
}

// HandleCollisions resolves, in order: the player against the border, the
// computer against the finish line, then the player against the finish line.
// All three checks run every tick.
func HandleCollisions(assets *track.Assets, state *models.RaceState, player *vehicle.Player, computer *vehicle.Computer) CollisionResult {
	var res CollisionResult

	if _, hit := player.CollidesWith(assets.BorderMask, image.Point{}); hit {
		player.Bounce()
		res.Bounced = true
	}

	if _, hit := computer.CollidesWith(assets.FinishMask, assets.FinishPos); hit {
		state.ResetState()
		player.ResetState()
		computer.AdvanceLevel(1)
		res.Lost = true
	}

	if p, hit := player.CollidesWith(assets.FinishMask, assets.FinishPos); hit {
		// Touching the top edge means the player came at the line from the wrong side.
		if p.Y == 0 {
			player.Bounce()
			res.Bounced = true
		} else {
			state.AdvanceLevel()
			player.ResetState()
			computer.AdvanceLevel(state.Stage)
			res.StageCleared = true
		}
	}

	return res
}
