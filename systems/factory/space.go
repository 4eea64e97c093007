package factory

import (
	"github.com/quailstudio/slingshock/archetypes"
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SimParams builds the physics parameter set from the global config. The
// world stepper, the slingshot and the trajectory preview all consume this
// one value, so they can never disagree on a constant.
func SimParams() physics.Params {
	return physics.Params{
		Gravity:      cfg.Physics.Gravity,
		Damping:      cfg.Physics.Damping,
		TimeStep:     cfg.Physics.TimeStep,
		SubSteps:     cfg.Physics.SubSteps,
		SleepSpeedSq: cfg.Physics.SleepSpeedSq,
		SleepDelay:   cfg.Physics.SleepDelay,
		LaunchPower:  cfg.Slingshot.LaunchPower,
	}
}

// CreateSpace creates the physics world entity for a level.
func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		World: physics.NewWorld(SimParams(), float64(width), float64(height)),
	})
	return space
}
