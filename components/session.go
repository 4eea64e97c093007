package components

import "github.com/yohamta/donburi"

// Phase is the high-level state of a level attempt.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseVictory
	PhaseDefeat
)

// SessionData tracks score and progress for the current level attempt.
type SessionData struct {
	Phase      Phase
	Score      int
	BirdsLeft  int // birds not yet launched (including the held one)
	BestScore  int
	BestBeaten bool
	BonusPaid  bool // unused-bird bonus awarded once on victory

	// Requests the scene layer honors on its next update.
	RestartRequested bool
	MenuRequested    bool
	NextRequested    bool
}

var Session = donburi.NewComponentType[SessionData]()
