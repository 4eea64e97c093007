package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quailstudio/slingshock/archetypes"
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput snapshots the pointer state once per tick. Gameplay systems
// read the snapshot instead of polling ebiten, so input is consistent
// across a tick.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	cx, cy := ebiten.CursorPosition()
	input.CursorX = float64(cx)
	input.CursorY = float64(cy)

	input.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	input.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	input.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	input.CancelPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	// World coordinates depend on the camera, which may not exist yet in
	// partially configured scenes.
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		halfW := float64(cfg.C.Width) / 2
		halfH := float64(cfg.C.Height) / 2
		input.WorldX = input.CursorX + camera.Position.X - halfW
		input.WorldY = input.CursorY + camera.Position.Y - halfH
	} else {
		input.WorldX = input.CursorX
		input.WorldY = input.CursorY
	}
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry)
	}
	entry := archetypes.Input.Spawn(e)
	components.Input.SetValue(entry, components.InputData{})
	return components.Input.Get(entry)
}
