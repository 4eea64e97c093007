package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/physics"
	"github.com/quailstudio/slingshock/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// DrawTrajectory previews the flight path while a drag is in progress.
// The preview replays the stepper's own formulas, so the dots are where
// the bird will actually fly.
func DrawTrajectory(e *ecs.ECS, screen *ebiten.Image) {
	slingEntry, ok := components.Slingshot.First(e.World)
	if !ok {
		return
	}
	sling := components.Slingshot.Get(slingEntry).Slingshot
	if !sling.Aiming() || sling.Held() == nil {
		return
	}

	raw := sling.LaunchVelocity()
	if raw.IsZero() {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel

	params := factory.SimParams()
	launch := raw.Scale(params.LaunchPower / params.Damping)
	path := physics.PredictPath(
		params,
		sling.Held().Position,
		launch,
		cfg.Trajectory.MaxSteps,
		level.GroundY,
		0,
		float64(level.Width),
	)

	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}
	for i, p := range path {
		if i%cfg.Trajectory.DotSpacing != 0 {
			continue
		}
		vector.DrawFilledCircle(screen,
			float32(p.X+camX), float32(p.Y+camY),
			float32(cfg.Trajectory.DotRadius), cfg.Trajectory.Color, true)
	}
}
