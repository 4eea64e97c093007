package systems

import (
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlight transitions flying birds to landed once the solver puts
// them to sleep, and despawns landed birds after their lifespan.
func UpdateFlight(e *ecs.ECS) {
	components.Bird.Each(e.World, func(entry *donburi.Entry) {
		bird := components.Bird.Get(entry)
		body := components.Body.Get(entry).Body

		switch bird.State {
		case components.BirdFlying:
			if body.Sleeping {
				bird.State = components.BirdLanded
				bird.LandedFrames = 0
			}
		case components.BirdLanded:
			bird.LandedFrames++
			if bird.LandedFrames >= cfg.Bird.LandedLifespan {
				body.MarkForRemoval()
			}
		}
	})
}
