package models

import (
	"math"
	"time"
)

// Stages is the number of stages in a race
const Stages = 10

// RaceState tracks the current stage and the stage clock.
// StageStartTime is only meaningful while InProgress is true.
type RaceState struct {
	Stage          int
	InProgress     bool
	StageStartTime time.Time

	now func() time.Time
}

// NewRaceState creates a race waiting to start stage 1
func NewRaceState() *RaceState {
	return NewRaceStateWithClock(time.Now)
}

// NewRaceStateWithClock creates a race state that reads time from now
func NewRaceStateWithClock(now func() time.Time) *RaceState {
	return &RaceState{
		Stage: 1,
		now:   now,
	}
}

// StartStage starts the stage clock
func (rs *RaceState) StartStage() {
	rs.InProgress = true
	rs.StageStartTime = rs.now()
}

// StageTime returns the whole seconds elapsed in the current stage, or 0
// when no stage is running.
func (rs *RaceState) StageTime() int {
	if !rs.InProgress {
		return 0
	}
	return int(math.Round(rs.now().Sub(rs.StageStartTime).Seconds()))
}

// AdvanceLevel moves on to the next stage. The next stage waits for a start.
func (rs *RaceState) AdvanceLevel() {
	rs.Stage++
	rs.InProgress = false
}

// ResetState goes back to stage 1 with the clock stopped
func (rs *RaceState) ResetState() {
	rs.Stage = 1
	rs.InProgress = false
	rs.StageStartTime = time.Time{}
}

// IsGameFinished reports whether every stage has been cleared
func (rs *RaceState) IsGameFinished() bool {
	return rs.Stage > Stages
}
