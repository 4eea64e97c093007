package archetypes

import (
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Bird = newArchetype(
		tags.Bird,
		components.Bird,
		components.Body,
	)
	Block = newArchetype(
		tags.Block,
		components.Block,
		components.Body,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Body,
	)
	Slingshot = newArchetype(
		tags.Slingshot,
		components.Slingshot,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
		components.Tween,
	)
	Session = newArchetype(
		components.Session,
	)
	Input = newArchetype(
		components.Input,
	)
	Popup = newArchetype(
		components.Popup,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
