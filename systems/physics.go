package systems

import (
	"github.com/quailstudio/slingshock/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the simulation one fixed tick. Ebiten's Update
// already runs at the simulation rate, so one call per frame keeps the
// stepper and the renderer in lockstep.
func UpdatePhysics(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Step()
}
