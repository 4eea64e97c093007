package systems

import (
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances score popup tweens and reaps finished popups.
func UpdateEffects(e *ecs.ECS) {
	dt := float32(cfg.Physics.TimeStep)
	var done []*donburi.Entry

	components.Popup.Each(e.World, func(entry *donburi.Entry) {
		popup := components.Popup.Get(entry)

		rise, _ := popup.Rise.Update(dt)
		alpha, finished := popup.Fade.Update(dt)
		popup.RiseY = rise
		popup.Alpha = alpha
		if finished {
			popup.Done = true
			done = append(done, entry)
		}
	})

	for _, entry := range done {
		e.World.Remove(entry.Entity())
	}
}
