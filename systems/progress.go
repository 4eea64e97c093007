package systems

import (
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProgress decides victory and defeat. Both wait for the simulation
// to settle so late collapses still count: a tower may crush the last
// enemy seconds after the final bird stopped.
func UpdateProgress(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	if session.Phase != components.PhasePlaying {
		return
	}

	enemies := 0
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemies++
	})

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	if !components.Space.Get(spaceEntry).Settled() {
		return
	}

	if enemies == 0 {
		if !session.BonusPaid {
			session.Score += session.BirdsLeft * cfg.Score.UnusedBirdBonus
			session.BonusPaid = true
		}
		session.Phase = components.PhaseVictory
		recordResult(e, session)
		return
	}

	if session.BirdsLeft <= 0 && !anyBirdInFlight(e) {
		session.Phase = components.PhaseDefeat
		recordResult(e, session)
	}
}

func anyBirdInFlight(e *ecs.ECS) bool {
	flying := false
	components.Bird.Each(e.World, func(entry *donburi.Entry) {
		state := components.Bird.Get(entry).State
		if state == components.BirdFlying || state == components.BirdAiming {
			flying = true
		}
	})
	return flying
}

// recordResult persists the score and unlocks the next level on victory.
func recordResult(e *ecs.ECS, session *components.SessionData) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if session.Score > session.BestScore {
		session.BestScore = session.Score
		session.BestBeaten = true
	}
	SaveLevelResult(level.LevelIndex, session.Score, session.Phase == components.PhaseVictory)
}
