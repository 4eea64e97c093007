package components

import "github.com/yohamta/donburi"

// InputData is the per-tick snapshot of pointer and key state. Captured
// once by the input system so gameplay systems never poll ebiten directly.
type InputData struct {
	CursorX, CursorY float64 // screen coordinates
	WorldX, WorldY   float64 // cursor translated through the camera
	Pressed          bool    // primary button held
	JustPressed      bool
	JustReleased     bool
	CancelPressed    bool // secondary button, aborts a drag
}

var Input = donburi.NewComponentType[InputData]()
