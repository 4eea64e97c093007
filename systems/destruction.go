package systems

import (
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDestruction retires entities whose bodies the solver flagged for
// removal, awarding points for demolished blocks and defeated enemies.
// The physics world computes no score itself; it only reports removal.
func UpdateDestruction(e *ecs.ECS) {
	var dead []*donburi.Entry

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		if body == nil || !body.MarkedForRemoval() {
			return
		}
		dead = append(dead, entry)
	})

	for _, entry := range dead {
		scoreRemoval(e, entry)
		e.World.Remove(entry.Entity())
	}
}

func scoreRemoval(e *ecs.ECS, entry *donburi.Entry) {
	body := components.Body.Get(entry).Body

	var points int
	shake := 0.0
	shakeFrames := 0

	switch {
	case entry.HasComponent(components.Enemy):
		points = components.Enemy.Get(entry).Points
		shake = cfg.ScreenShake.EnemyIntensity
		shakeFrames = cfg.ScreenShake.EnemyDuration
	case entry.HasComponent(components.Block):
		points = components.Block.Get(entry).Points
		shake = cfg.ScreenShake.BlockIntensity
		shakeFrames = cfg.ScreenShake.BlockDuration
	case entry.HasComponent(components.Bird):
		// Spent birds score nothing.
		return
	default:
		return
	}

	// Fallen-out-of-bounds removals still score: the structure collapsed.
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	if session.Phase == components.PhaseVictory || session.Phase == components.PhaseDefeat {
		return
	}

	session.Score += points
	factory.SpawnScorePopup(e, body.Position.X, body.Position.Y, points)
	TriggerScreenShake(e, shake, shakeFrames)
}
