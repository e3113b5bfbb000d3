package game

import (
	"fmt"
	"log"
	"time"

	"github.com/golangdaddy/racer/pkg/models"
	"github.com/golangdaddy/racer/pkg/track"
	"github.com/golangdaddy/racer/pkg/vehicle"
)

// ResultPause is how long the win and loss messages stay up
const ResultPause = 5 * time.Second

// Phase is where the race loop is between ticks
type Phase int

const (
	PhaseAwaitingStart Phase = iota
	PhaseRunning
	PhaseLost
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting start"
	case PhaseRunning:
		return "running"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Event is something a race listener can react to
type Event int

const (
	EventStageStarted Event = iota
	EventBounce
	EventStageCleared
	EventLost
	EventWon
)

// Race owns the race state and both cars and advances them one tick at a time
type Race struct {
	Assets   *track.Assets
	State    *models.RaceState
	Player   *vehicle.Player
	Computer *vehicle.Computer

	phase      Phase
	pauseUntil time.Time
	now        func() time.Time
	listeners  []func(Event)
}

// NewRace creates a race on the given track, waiting for stage 1 to start
func NewRace(assets *track.Assets) *Race {
	return NewRaceWithClock(assets, time.Now)
}

// NewRaceWithClock creates a race that reads time from now
func NewRaceWithClock(assets *track.Assets, now func() time.Time) *Race {
	def := assets.Definition
	return &Race{
		Assets:   assets,
		State:    models.NewRaceStateWithClock(now),
		Player:   vehicle.NewPlayer(def.PlayerStart.Image()),
		Computer: vehicle.NewComputer(def.ComputerStart.Image(), def.WaypointPath()),
		phase:    PhaseAwaitingStart,
		now:      now,
	}
}

// Phase returns the current phase
func (r *Race) Phase() Phase {
	return r.phase
}

// OnEvent registers a listener for race events
func (r *Race) OnEvent(fn func(Event)) {
	r.listeners = append(r.listeners, fn)
}

func (r *Race) emit(e Event) {
	for _, fn := range r.listeners {
		fn(e)
	}
}

// Message returns the banner to show over the track, or "" while racing
func (r *Race) Message() string {
	switch r.phase {
	case PhaseAwaitingStart:
		return fmt.Sprintf("Press any key to start level %d!", r.State.Stage)
	case PhaseLost:
		return "You lost!"
	case PhaseWon:
		return "You won the game!"
	}
	return ""
}

// Update advances the race by one tick. anyKey reports whether a key went
// down this tick, which starts a stage that is waiting.
func (r *Race) Update(controls Controls, anyKey bool) {
	switch r.phase {
	case PhaseAwaitingStart:
		if anyKey {
			r.State.StartStage()
			r.phase = PhaseRunning
			log.Printf("Stage %d started", r.State.Stage)
			r.emit(EventStageStarted)
		}

	case PhaseRunning:
		r.step(controls)

	case PhaseLost, PhaseWon:
		if !r.now().Before(r.pauseUntil) {
			r.phase = PhaseAwaitingStart
		}
	}
}

// step runs one racing tick: input, AI, then collisions and progression
func (r *Race) step(controls Controls) {
	stage := r.State.Stage
	elapsed := r.State.StageTime()

	ApplyControls(r.Player, controls)
	r.Computer.UpdateMotion()
	res := HandleCollisions(r.Assets, r.State, r.Player, r.Computer)

	if res.Bounced {
		r.emit(EventBounce)
	}

	if res.Lost {
		log.Printf("Computer won stage %d after %ds, back to stage 1", stage, elapsed)
		r.emit(EventLost)
		r.pause(PhaseLost)
		return
	}

	if res.StageCleared {
		log.Printf("Stage %d cleared in %ds", stage, elapsed)
		r.emit(EventStageCleared)
	}

	if r.State.IsGameFinished() {
		log.Printf("All %d stages cleared", models.Stages)
		r.Reset()
		r.emit(EventWon)
		r.pause(PhaseWon)
		return
	}

	if !r.State.InProgress {
		r.phase = PhaseAwaitingStart
	}
}

func (r *Race) pause(phase Phase) {
	r.phase = phase
	r.pauseUntil = r.now().Add(ResultPause)
}

// Reset puts the race back to stage 1 with both cars on the start line.
// The computer gets its stage 1 speed back so it is ready to roll.
func (r *Race) Reset() {
	r.State.ResetState()
	r.Player.ResetState()
	r.Computer.AdvanceLevel(1)
}
