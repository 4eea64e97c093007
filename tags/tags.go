package tags

import "github.com/yohamta/donburi"

var (
	Bird      = donburi.NewTag().SetName("Bird")
	Block     = donburi.NewTag().SetName("Block")
	Enemy     = donburi.NewTag().SetName("Enemy")
	Ground    = donburi.NewTag().SetName("Ground")
	Slingshot = donburi.NewTag().SetName("Slingshot")
)
