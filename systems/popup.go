package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawPopups renders floating score labels in world space.
func DrawPopups(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}
	face := fonts.Bold.Get()

	components.Popup.Each(e.World, func(entry *donburi.Entry) {
		popup := components.Popup.Get(entry)
		if popup.Done {
			return
		}

		clr := cfg.Popup.Color
		faded := color.RGBA{
			R: clr.R,
			G: clr.G,
			B: clr.B,
			A: uint8(float32(clr.A) * popup.Alpha),
		}
		x := int(popup.X + camX)
		y := int(popup.Y + camY + float64(popup.RiseY))
		text.Draw(screen, popup.Text, face, x, y, faded)
	})
}
