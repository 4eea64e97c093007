package systems

import (
	"github.com/quailstudio/slingshock/components"
	"github.com/quailstudio/slingshock/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSlingshot drives the launch cycle: reload the next queued bird,
// track a drag in progress, and launch on release.
func UpdateSlingshot(e *ecs.ECS) {
	slingEntry, ok := components.Slingshot.First(e.World)
	if !ok {
		return
	}
	sling := components.Slingshot.Get(slingEntry).Slingshot
	input := getOrCreateInput(e)

	if sling.Held() == nil {
		reloadNextBird(e, sling)
	}

	heldEntry := heldBirdEntry(e, sling)
	if heldEntry == nil {
		return
	}
	bird := components.Bird.Get(heldEntry)

	pointer := physics.NewVec2(input.WorldX, input.WorldY)

	switch {
	case input.JustPressed && !sling.Aiming():
		if sling.StartAim(pointer) {
			bird.State = components.BirdAiming
		}
	case sling.Aiming() && input.CancelPressed:
		sling.Cancel()
		bird.State = components.BirdIdle
	case sling.Aiming() && input.Pressed:
		sling.UpdateAim(pointer)
	case sling.Aiming() && input.JustReleased:
		sling.UpdateAim(pointer)
		if sling.EndAim() {
			bird.State = components.BirdFlying
			if session, ok := components.Session.First(e.World); ok {
				components.Session.Get(session).BirdsLeft--
			}
		} else {
			// Released with no drag, the bird stays put.
			bird.State = components.BirdIdle
		}
	}
}

// reloadNextBird attaches the lowest-numbered idle bird to the slingshot.
func reloadNextBird(e *ecs.ECS, sling *physics.Slingshot) {
	var next *donburi.Entry
	nextIndex := -1

	components.Bird.Each(e.World, func(entry *donburi.Entry) {
		bird := components.Bird.Get(entry)
		if bird.State != components.BirdIdle {
			return
		}
		if next == nil || bird.QueueIndex < nextIndex {
			next = entry
			nextIndex = bird.QueueIndex
		}
	})

	if next == nil {
		return
	}
	sling.Attach(components.Body.Get(next).Body)
}

// heldBirdEntry resolves the held physics body back to its ECS entry.
func heldBirdEntry(e *ecs.ECS, sling *physics.Slingshot) *donburi.Entry {
	held := sling.Held()
	if held == nil {
		return nil
	}
	entry, ok := held.UserData.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return nil
	}
	return entry
}
