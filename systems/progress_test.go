package systems

import (
	"testing"

	"github.com/quailstudio/slingshock/archetypes"
	"github.com/quailstudio/slingshock/assets"
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/physics"
	"github.com/quailstudio/slingshock/systems/factory"
	"github.com/quailstudio/slingshock/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestScene builds an ECS with a physics space, ground and session,
// the minimum a gameplay system needs.
func newTestScene(birds int) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 1408, 640)
	factory.CreateGround(e, assets.GroundSpawn{X: 0, Y: 576, Width: 1408, Height: 64})

	session := archetypes.Session.Spawn(e)
	components.Session.SetValue(session, components.SessionData{
		Phase:     components.PhasePlaying,
		BirdsLeft: birds,
	})
	return e
}

func getSession(t *testing.T, e *ecs.ECS) *components.SessionData {
	t.Helper()
	entry, ok := components.Session.First(e.World)
	if !ok {
		t.Fatal("no session entity")
	}
	return components.Session.Get(entry)
}

func TestDestructionScoresAndRemovesEnemy(t *testing.T) {
	e := newTestScene(3)
	enemy := factory.CreateEnemy(e, assets.EnemySpawn{X: 900, Y: 563})

	body := components.Body.Get(enemy).Body
	body.Damage(cfg.Enemy.Health + 1)
	if !body.MarkedForRemoval() {
		t.Fatal("lethal damage did not flag the body")
	}

	UpdateDestruction(e)

	session := getSession(t, e)
	if session.Score != cfg.Enemy.Points {
		t.Errorf("score = %d, want %d", session.Score, cfg.Enemy.Points)
	}

	remaining := 0
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		remaining++
	})
	if remaining != 0 {
		t.Errorf("%d enemy entities left, want 0", remaining)
	}

	if _, ok := components.Popup.First(e.World); !ok {
		t.Error("destruction spawned no score popup")
	}
}

func TestDestructionScoresBlockByMaterial(t *testing.T) {
	e := newTestScene(3)
	block := factory.CreateBlock(e, assets.BlockSpawn{
		X: 900, Y: 496, Width: 20, Height: 80, Material: "stone",
	})

	body := components.Body.Get(block).Body
	body.Damage(body.MaxHealth + 1)
	UpdateDestruction(e)

	if got, want := getSession(t, e).Score, cfg.Materials["stone"].Points; got != want {
		t.Errorf("score = %d, want %d", got, want)
	}
}

func TestVictoryAwardsUnusedBirdBonus(t *testing.T) {
	e := newTestScene(2)

	// No enemies and a settled world: the attempt is won.
	UpdateProgress(e)

	session := getSession(t, e)
	if session.Phase != components.PhaseVictory {
		t.Fatalf("phase = %v, want victory", session.Phase)
	}
	if want := 2 * cfg.Score.UnusedBirdBonus; session.Score != want {
		t.Errorf("score = %d, want %d bonus", session.Score, want)
	}

	// A second pass must not award the bonus again.
	score := session.Score
	session.Phase = components.PhasePlaying
	UpdateProgress(e)
	if session.Score != score {
		t.Errorf("bonus paid twice: %d -> %d", score, session.Score)
	}
}

func TestDefeatWhenBirdsExhaustedAndEnemiesRemain(t *testing.T) {
	e := newTestScene(0)
	enemy := factory.CreateEnemy(e, assets.EnemySpawn{X: 900, Y: 563})

	// The enemy is at rest, so the world counts as settled.
	components.Body.Get(enemy).Sleeping = true

	UpdateProgress(e)

	if got := getSession(t, e).Phase; got != components.PhaseDefeat {
		t.Errorf("phase = %v, want defeat", got)
	}
}

func TestNoDefeatWhileWorldIsStillMoving(t *testing.T) {
	e := newTestScene(0)
	factory.CreateEnemy(e, assets.EnemySpawn{X: 900, Y: 400})

	// Awake enemy mid-fall: not settled, no verdict yet.
	UpdateProgress(e)

	if got := getSession(t, e).Phase; got != components.PhasePlaying {
		t.Errorf("phase = %v, want still playing", got)
	}
}

func TestFlightLandsAndExpires(t *testing.T) {
	e := newTestScene(1)
	bird := factory.CreateBird(e, physics.NewVec2(200, 500), 0)

	data := components.Bird.Get(bird)
	data.State = components.BirdFlying

	body := components.Body.Get(bird).Body
	body.Sleeping = true

	UpdateFlight(e)
	if data.State != components.BirdLanded {
		t.Fatalf("state = %v, want landed", data.State)
	}

	for i := 0; i < cfg.Bird.LandedLifespan; i++ {
		UpdateFlight(e)
	}
	if !body.MarkedForRemoval() {
		t.Error("landed bird not flagged after its lifespan")
	}
}
