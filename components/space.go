package components

import (
	"github.com/quailstudio/slingshock/physics"
	"github.com/yohamta/donburi"
)

// SpaceData holds the physics world the level simulates in. One per scene.
type SpaceData struct {
	*physics.World
}

var Space = donburi.NewComponentType[SpaceData]()
