package components

import "github.com/yohamta/donburi"

// BirdState tracks a bird through the launch cycle.
type BirdState int

const (
	BirdIdle BirdState = iota // waiting in the queue
	BirdAiming
	BirdFlying
	BirdLanded
)

func (s BirdState) String() string {
	switch s {
	case BirdIdle:
		return "idle"
	case BirdAiming:
		return "aiming"
	case BirdFlying:
		return "flying"
	case BirdLanded:
		return "landed"
	}
	return "unknown"
}

type BirdData struct {
	State        BirdState
	QueueIndex   int // 0 = next up
	LandedFrames int // frames spent in BirdLanded
}

var Bird = donburi.NewComponentType[BirdData]()
