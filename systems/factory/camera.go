package factory

import (
	"github.com/quailstudio/slingshock/archetypes"
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the camera entity, starting on the structure and
// panning back to the slingshot so the player sees the target first.
func CreateCamera(ecs *ecs.ECS, structureX, slingshotX, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.Vec2{X: structureX, Y: y},
		Panning:  true,
	})

	// The pan holds on the structure, then eases back to the launch side.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(structureX), float32(structureX), cfg.Camera.IntroPanHold, ease.Linear),
		gween.New(float32(structureX), float32(slingshotX), cfg.Camera.IntroPanTime, ease.InOutQuad),
	)
	components.Tween.Set(camera, tw)

	return camera
}
