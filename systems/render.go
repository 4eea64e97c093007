package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cameraOffset returns the translation from world to screen coordinates.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// DrawScene renders the level: sky, statics, blocks, enemies, birds and
// the slingshot, all with ebiten vector primitives.
func DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyBlue)

	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	// Ground first so everything else layers above it.
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		if body == nil || body.Shape == nil {
			return
		}
		if body.Static {
			drawBox(screen, body, camX, camY, cfg.GroundBrown)
		}
	})

	components.Block.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		block := components.Block.Get(entry)
		material := cfg.Materials[block.Material]
		drawBox(screen, body, camX, camY, damageTint(body, material))
	})

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		drawCircle(screen, body, camX, camY, cfg.Enemy.Color)
	})

	drawSlingshot(e, screen, camX, camY)

	components.Bird.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		drawCircle(screen, body, camX, camY, cfg.Bird.Color)
	})
}

// damageTint lerps a block's color toward its cracked color as it takes
// damage.
func damageTint(body *physics.Body, material cfg.MaterialConfig) color.RGBA {
	if body.MaxHealth <= 0 {
		return material.Color
	}
	t := 1 - body.Health/body.MaxHealth
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{
		R: lerp(material.Color.R, material.CrackedColor.R),
		G: lerp(material.Color.G, material.CrackedColor.G),
		B: lerp(material.Color.B, material.CrackedColor.B),
		A: 255,
	}
}

func drawBox(screen *ebiten.Image, body *physics.Body, camX, camY float64, clr color.RGBA) {
	box, ok := body.Shape.(*physics.Box)
	if !ok {
		return
	}
	x := body.Position.X - box.Width/2 + camX
	y := body.Position.Y - box.Height/2 + camY
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(box.Width), float32(box.Height), clr, false)
}

func drawCircle(screen *ebiten.Image, body *physics.Body, camX, camY float64, clr color.RGBA) {
	circle, ok := body.Shape.(*physics.Circle)
	if !ok {
		return
	}
	x := float32(body.Position.X + camX)
	y := float32(body.Position.Y + camY)
	vector.DrawFilledCircle(screen, x, y, float32(circle.Radius), clr, true)
}

// drawSlingshot renders the forked post and, while a bird is held, the
// band from each prong to the bird.
func drawSlingshot(e *ecs.ECS, screen *ebiten.Image, camX, camY float64) {
	slingEntry, ok := components.Slingshot.First(e.World)
	if !ok {
		return
	}
	sling := components.Slingshot.Get(slingEntry).Slingshot

	anchor := sling.Anchor
	baseY := anchor.Y + 60
	post := color.RGBA{R: 90, G: 60, B: 35, A: 255}

	ax := float32(anchor.X + camX)
	ay := float32(anchor.Y + camY)
	vector.StrokeLine(screen, ax, float32(baseY+camY), ax, ay+10, 6, post, true)
	vector.StrokeLine(screen, ax, ay+10, ax-10, ay-4, 4, post, true)
	vector.StrokeLine(screen, ax, ay+10, ax+10, ay-4, 4, post, true)

	held := sling.Held()
	if held == nil {
		return
	}
	band := color.RGBA{R: 60, G: 40, B: 30, A: 255}
	bx := float32(held.Position.X + camX)
	by := float32(held.Position.Y + camY)
	vector.StrokeLine(screen, ax-10, ay-4, bx, by, 3, band, true)
	vector.StrokeLine(screen, ax+10, ay-4, bx, by, 3, band, true)
}
