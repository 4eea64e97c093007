package assets

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

// GroundSpawn is a static box placed from the level's Ground layer.
// X and Y are the Tiled top-left corner, not the center.
type GroundSpawn struct {
	X, Y, Width, Height float64
}

// BlockSpawn is a destructible box from the Blocks layer.
type BlockSpawn struct {
	X, Y, Width, Height float64
	Material            string
}

// EnemySpawn is an enemy circle from the Enemies layer. X and Y are the
// circle's center.
type EnemySpawn struct {
	X, Y   float64
	Radius float64 // 0 = use the configured default
}

// SlingshotSpawn is the launch anchor and the bird budget for the level.
type SlingshotSpawn struct {
	X, Y  float64
	Birds int
}

type Level struct {
	Name      string
	Width     int
	Height    int
	GroundY   float64 // top of the highest ground box, clips aim previews
	Grounds   []GroundSpawn
	Blocks    []BlockSpawn
	Enemies   []EnemySpawn
	Slingshot SlingshotSpawn
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

func (l *LevelLoader) MustLoadLevels() []Level {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []Level
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			levelPath := filepath.Join("levels", entry.Name())
			level := l.MustLoadLevel(levelPath)
			levels = append(levels, level)
		}
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}

	return levels
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(err)
	}

	level := Level{
		Name:    levelPath,
		Width:   levelMap.Width * levelMap.TileWidth,
		Height:  levelMap.Height * levelMap.TileHeight,
		Grounds: []GroundSpawn{},
		Blocks:  []BlockSpawn{},
		Enemies: []EnemySpawn{},
	}
	if name := levelMap.Properties.GetString("name"); name != "" {
		level.Name = name
	}
	level.GroundY = float64(level.Height)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				level.Grounds = append(level.Grounds, GroundSpawn{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
				if o.Y < level.GroundY {
					level.GroundY = o.Y
				}
			}
		case "Blocks":
			for _, o := range og.Objects {
				material := o.Properties.GetString("material")
				if material == "" {
					material = "wood"
				}
				level.Blocks = append(level.Blocks, BlockSpawn{
					X:        o.X,
					Y:        o.Y,
					Width:    o.Width,
					Height:   o.Height,
					Material: material,
				})
			}
		case "Enemies":
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, EnemySpawn{
					X:      o.X,
					Y:      o.Y,
					Radius: o.Properties.GetFloat("radius"),
				})
			}
		case "Slingshot":
			for _, o := range og.Objects {
				level.Slingshot = SlingshotSpawn{
					X:     o.X,
					Y:     o.Y,
					Birds: o.Properties.GetInt("birds"),
				}
			}
		}
	}

	if level.Slingshot.Birds <= 0 {
		panic(fmt.Sprintf("level %s has no slingshot with a bird budget", levelPath))
	}

	return level
}
