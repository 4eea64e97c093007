package components

import (
	"github.com/quailstudio/slingshock/physics"
	"github.com/yohamta/donburi"
)

type SlingshotData struct {
	*physics.Slingshot
}

var Slingshot = donburi.NewComponentType[SlingshotData]()
