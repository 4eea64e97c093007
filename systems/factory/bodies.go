package factory

import (
	"github.com/quailstudio/slingshock/archetypes"
	"github.com/quailstudio/slingshock/assets"
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround creates a static collision box from a Tiled rectangle.
func CreateGround(ecs *ecs.ECS, spawn assets.GroundSpawn) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	center := physics.NewVec2(spawn.X+spawn.Width/2, spawn.Y+spawn.Height/2)
	body := physics.NewStaticBody(center, physics.NewBox(spawn.Width, spawn.Height))
	body.UserData = ground

	components.Body.SetValue(ground, components.BodyData{Body: body})
	mustSpace(ecs).AddBody(body)
	return ground
}

// CreateBlock creates a destructible box with material tuning.
func CreateBlock(ecs *ecs.ECS, spawn assets.BlockSpawn) *donburi.Entry {
	material, ok := cfg.Materials[spawn.Material]
	if !ok {
		material = cfg.Materials["wood"]
	}

	block := archetypes.Block.Spawn(ecs)

	center := physics.NewVec2(spawn.X+spawn.Width/2, spawn.Y+spawn.Height/2)
	mass := material.Density * spawn.Width * spawn.Height / 1000.0
	body := physics.NewBody(center, physics.NewBox(spawn.Width, spawn.Height), mass)
	body.Restitution = material.Restitution
	body.Health = material.Health
	body.MaxHealth = material.Health
	body.DamageThreshold = material.DamageThreshold
	body.UserData = block

	components.Body.SetValue(block, components.BodyData{Body: body})
	components.Block.SetValue(block, components.BlockData{
		Material: material.Name,
		Points:   material.Points,
	})
	mustSpace(ecs).AddBody(body)
	return block
}

// CreateEnemy creates an enemy circle resting in the structure.
func CreateEnemy(ecs *ecs.ECS, spawn assets.EnemySpawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	radius := spawn.Radius
	if radius <= 0 {
		radius = cfg.Enemy.Radius
	}
	body := physics.NewBody(physics.NewVec2(spawn.X, spawn.Y), physics.NewCircle(radius), cfg.Enemy.Mass)
	body.Restitution = cfg.Enemy.Restitution
	body.Health = cfg.Enemy.Health
	body.MaxHealth = cfg.Enemy.Health
	body.DamageThreshold = cfg.Enemy.DamageThreshold
	body.UserData = enemy

	components.Body.SetValue(enemy, components.BodyData{Body: body})
	components.Enemy.SetValue(enemy, components.EnemyData{Points: cfg.Enemy.Points})
	mustSpace(ecs).AddBody(body)
	return enemy
}

// CreateBird creates one queued projectile. Queued birds drop to the
// ground beside the slingshot and sleep there until attached.
func CreateBird(ecs *ecs.ECS, anchor physics.Vec2, queueIndex int) *donburi.Entry {
	bird := archetypes.Bird.Spawn(ecs)

	pos := physics.NewVec2(
		anchor.X-float64(queueIndex+1)*cfg.Bird.QueueSpacing,
		anchor.Y,
	)
	body := physics.NewBody(pos, physics.NewCircle(cfg.Bird.Radius), cfg.Bird.Mass)
	body.Restitution = cfg.Bird.Restitution
	body.Health = cfg.Bird.Health
	body.MaxHealth = cfg.Bird.Health
	body.DamageThreshold = cfg.Bird.DamageThreshold
	body.UserData = bird

	components.Body.SetValue(bird, components.BodyData{Body: body})
	components.Bird.SetValue(bird, components.BirdData{
		State:      components.BirdIdle,
		QueueIndex: queueIndex,
	})
	mustSpace(ecs).AddBody(body)
	return bird
}

// CreateSlingshot creates the launch anchor entity.
func CreateSlingshot(ecs *ecs.ECS, spawn assets.SlingshotSpawn) *donburi.Entry {
	sling := archetypes.Slingshot.Spawn(ecs)
	components.Slingshot.SetValue(sling, components.SlingshotData{
		Slingshot: physics.NewSlingshot(
			physics.NewVec2(spawn.X, spawn.Y),
			cfg.Slingshot.MaxDrag,
			SimParams(),
		),
	})
	return sling
}

func mustSpace(ecs *ecs.ECS) *physics.World {
	return components.Space.Get(components.Space.MustFirst(ecs.World)).World
}
