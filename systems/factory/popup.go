package factory

import (
	"fmt"

	"github.com/quailstudio/slingshock/archetypes"
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnScorePopup creates a rising, fading score label at a world position.
func SpawnScorePopup(ecs *ecs.ECS, x, y float64, points int) *donburi.Entry {
	popup := archetypes.Popup.Spawn(ecs)
	components.Popup.SetValue(popup, components.PopupData{
		Text:  fmt.Sprintf("+%d", points),
		X:     x,
		Y:     y,
		Rise:  gween.New(0, -cfg.Popup.RiseDistance, cfg.Popup.Duration, ease.OutQuad),
		Fade:  gween.New(1, 0, cfg.Popup.Duration, ease.InQuad),
		Alpha: 1,
	})
	return popup
}
