package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var debugEnabled bool

func init() {
	debugEnabled = cfg.Debug.Enabled
}

// UpdateDebug toggles the overlay with F1.
func UpdateDebug(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugEnabled = !debugEnabled
	}
}

// DrawDebug outlines every body, tints sleeping ones, and prints the
// solver counters.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !debugEnabled {
		return
	}

	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		if body == nil || body.Shape == nil {
			return
		}

		c := color.RGBA{0, 255, 255, 255} // cyan: awake dynamic
		if body.Static {
			c = color.RGBA{120, 120, 120, 255}
		} else if body.Sleeping {
			c = color.RGBA{255, 0, 255, 255}
		}

		switch shape := body.Shape.(type) {
		case *physics.Circle:
			vector.StrokeCircle(screen,
				float32(body.Position.X+camX), float32(body.Position.Y+camY),
				float32(shape.Radius), 1, c, true)
		case *physics.Box:
			vector.StrokeRect(screen,
				float32(body.Position.X-shape.Width/2+camX),
				float32(body.Position.Y-shape.Height/2+camY),
				float32(shape.Width), float32(shape.Height), 1, c, false)
		}
	})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		world := components.Space.Get(spaceEntry).World
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("bodies %d contacts %d", len(world.Bodies()), world.ContactCount()),
			8, screen.Bounds().Dy()-20)
	}
}
