package factory

import (
	"github.com/quailstudio/slingshock/archetypes"
	"github.com/quailstudio/slingshock/assets"
	"github.com/quailstudio/slingshock/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex loads every level and selects the one at index.
func CreateLevelAtIndex(ecs *ecs.ECS, index int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loader := assets.NewLevelLoader()
	levels := loader.MustLoadLevels()
	if index < 0 || index >= len(levels) {
		index = 0
	}

	components.Level.SetValue(level, components.LevelData{
		CurrentLevel: &levels[index],
		LevelIndex:   index,
		Levels:       levels,
	})
	return level
}
