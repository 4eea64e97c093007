package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Panning  bool // intro pan still running, follow logic waits
}

var Camera = donburi.NewComponentType[CameraData]()
