package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the score, the bird reserve and the level name.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	margin := cfg.HUD.Margin
	boldFont := fonts.Bold.Get()
	smallFont := fonts.Small.Get()

	text.Draw(screen, fmt.Sprintf("SCORE %d", session.Score), boldFont,
		int(margin), int(margin)+20, cfg.HUD.TextColor)

	if session.BestScore > 0 {
		text.Draw(screen, fmt.Sprintf("BEST %d", session.BestScore), smallFont,
			int(margin), int(margin)+42, cfg.HUD.HintColor)
	}

	// Bird reserve as filled dots under the score.
	for i := 0; i < session.BirdsLeft; i++ {
		x := margin + 8 + float64(i)*20
		vector.DrawFilledCircle(screen, float32(x), float32(margin)+62, 7, cfg.Bird.Color, true)
	}

	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry).CurrentLevel
		if level != nil {
			width := screen.Bounds().Dx()
			text.Draw(screen, level.Name, smallFont,
				width-len(level.Name)*8-int(margin), int(margin)+20, cfg.HUD.HintColor)
		}
	}
}
