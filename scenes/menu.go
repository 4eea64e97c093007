package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quailstudio/slingshock/assets"
	"github.com/quailstudio/slingshock/systems"
	"github.com/quailstudio/slingshock/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title and the level select list.
type MenuScene struct {
	menuUI       *ui.MenuUI
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	levels := assets.NewLevelLoader().MustLoadLevels()
	progress := systems.LoadProgress()

	items := make([]ui.LevelItem, len(levels))
	for i, level := range levels {
		items[i] = ui.LevelItem{
			Name:      level.Name,
			BestScore: progress.BestScores[i],
			Locked:    i > progress.Unlocked,
		}
	}

	ms.menuUI = ui.NewMenuUI(items,
		func(index int) {
			ms.sceneChanger.ChangeScene(NewGameSceneAtLevel(ms.sceneChanger, index))
		},
		func() {
			os.Exit(0)
		},
	)
}
