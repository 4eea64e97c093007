package components

import "github.com/yohamta/donburi"

type BlockData struct {
	Material string
	Points   int
}

var Block = donburi.NewComponentType[BlockData]()

type EnemyData struct {
	Points int
}

var Enemy = donburi.NewComponentType[EnemyData]()
