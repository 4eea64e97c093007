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

// DrawResult renders the victory or defeat overlay once the level ends.
func DrawResult(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	var title string
	titleColor := cfg.Result.VictoryColor
	switch session.Phase {
	case components.PhaseVictory:
		title = "LEVEL CLEARED"
	case components.PhaseDefeat:
		title = "OUT OF BIRDS"
		titleColor = cfg.Result.DefeatColor
	default:
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Result.OverlayColor, false)

	titleFont := fonts.Title.Get()
	titleX := int((width - float64(len(title)*20)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Result.TitleY), titleColor)

	boldFont := fonts.Bold.Get()
	score := fmt.Sprintf("SCORE %d", session.Score)
	if session.BestBeaten {
		score += "   NEW BEST!"
	}
	scoreX := int((width - float64(len(score)*11)) / 2)
	text.Draw(screen, score, boldFont, scoreX, int(cfg.Result.ScoreY), cfg.Result.TextColor)

	hintFont := fonts.Regular.Get()
	hint := "R retry    M menu"
	if session.Phase == components.PhaseVictory {
		hint = "ENTER next    R retry    M menu"
	}
	hintX := int((width - float64(len(hint)*8)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(cfg.Result.HintY), cfg.Result.TextColor)
}
