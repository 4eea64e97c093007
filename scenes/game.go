package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quailstudio/slingshock/archetypes"
	"github.com/quailstudio/slingshock/assets"
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/physics"
	"github.com/quailstudio/slingshock/systems"
	"github.com/quailstudio/slingshock/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs one level attempt.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewGameScene creates a game scene on the first level.
func NewGameScene(sc SceneChanger) *GameScene {
	return &GameScene{sceneChanger: sc}
}

// NewGameSceneAtLevel creates a game scene on a chosen level.
func NewGameSceneAtLevel(sc SceneChanger, levelIndex int) *GameScene {
	return &GameScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	sessionEntry, ok := components.Session.First(gs.ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	switch {
	case session.RestartRequested:
		gs.sceneChanger.ChangeScene(NewGameSceneAtLevel(gs.sceneChanger, gs.levelIndex))
	case session.MenuRequested:
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
	case session.NextRequested:
		levelData := components.Level.Get(components.Level.MustFirst(gs.ecs.World))
		next := gs.levelIndex + 1
		if next < len(levelData.Levels) {
			gs.sceneChanger.ChangeScene(NewGameSceneAtLevel(gs.sceneChanger, next))
		} else {
			gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
		}
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateDebug)

	// Game systems halted by pause and by the result overlay
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSlingshot))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFlight))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDestruction))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProgress))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Popups keep fading over the result overlay
	e.AddSystem(systems.UpdateEffects)

	e.AddRenderer(cfg.Default, systems.DrawScene)
	e.AddRenderer(cfg.Default, systems.DrawTrajectory)
	e.AddRenderer(cfg.Default, systems.DrawPopups)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, systems.DrawResult)

	gs.ecs = e

	// Level data first, the physics space needs its dimensions.
	levelEntry := factory.CreateLevelAtIndex(gs.ecs, gs.levelIndex)
	levelData := components.Level.Get(levelEntry)
	level := levelData.CurrentLevel
	gs.levelIndex = levelData.LevelIndex

	factory.CreateSpace(gs.ecs, level.Width, level.Height)

	for _, ground := range level.Grounds {
		factory.CreateGround(gs.ecs, ground)
	}
	for _, block := range level.Blocks {
		factory.CreateBlock(gs.ecs, block)
	}
	for _, enemy := range level.Enemies {
		factory.CreateEnemy(gs.ecs, enemy)
	}

	factory.CreateSlingshot(gs.ecs, level.Slingshot)
	anchor := physics.NewVec2(level.Slingshot.X, level.Slingshot.Y)
	for i := 0; i < level.Slingshot.Birds; i++ {
		factory.CreateBird(gs.ecs, anchor, i)
	}

	// The intro pan starts on the structure so the player sees the target.
	factory.CreateCamera(gs.ecs, structureCenterX(level), anchor.X, anchor.Y)

	session := archetypes.Session.Spawn(gs.ecs)
	components.Session.SetValue(session, components.SessionData{
		Phase:     components.PhasePlaying,
		BirdsLeft: level.Slingshot.Birds,
		BestScore: systems.BestScoreFor(gs.levelIndex),
	})
}

// structureCenterX finds the middle of the destructible structure, or the
// level's far side when a level has no blocks.
func structureCenterX(level *assets.Level) float64 {
	if len(level.Blocks) == 0 && len(level.Enemies) == 0 {
		return float64(level.Width) * 0.75
	}

	sum := 0.0
	n := 0
	for _, b := range level.Blocks {
		sum += b.X + b.Width/2
		n++
	}
	for _, e := range level.Enemies {
		sum += e.X
		n++
	}
	return sum / float64(n)
}
