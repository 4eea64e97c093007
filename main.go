package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/fonts"
	"github.com/quailstudio/slingshock/scenes"
	"github.com/quailstudio/slingshock/systems"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFont(fonts.Regular, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Bold, goregular.TTF, 20)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 36)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewGameScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Slingshock")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
