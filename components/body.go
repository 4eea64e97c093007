package components

import (
	"github.com/quailstudio/slingshock/physics"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	*physics.Body
}

var Body = donburi.NewComponentType[BodyData]()
