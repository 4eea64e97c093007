package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quailstudio/slingshock/components"
	cfg "github.com/quailstudio/slingshock/config"
	"github.com/quailstudio/slingshock/fonts"
	"github.com/yohamta/donburi/ecs"
)

// WithGameplayChecks wraps a system so it only runs while the level is
// actively being played.
func WithGameplayChecks(sys ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		sessionEntry, ok := components.Session.First(e.World)
		if !ok {
			return
		}
		if components.Session.Get(sessionEntry).Phase != components.PhasePlaying {
			return
		}
		sys(e)
	}
}

// UpdatePause handles the pause toggle and the restart/menu shortcuts.
func UpdatePause(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		switch session.Phase {
		case components.PhasePlaying:
			session.Phase = components.PhasePaused
		case components.PhasePaused:
			session.Phase = components.PhasePlaying
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		session.RestartRequested = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		session.MenuRequested = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) &&
		session.Phase == components.PhaseVictory {
		session.NextRequested = true
	}
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	if components.Session.Get(sessionEntry).Phase != components.PhasePaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := "PAUSED"
	titleX := int((width - float64(len(title)*20)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Pause.TitleY), cfg.Pause.TitleColor)

	hintFont := fonts.Regular.Get()
	hint := "ESC resume    R restart    M menu"
	hintX := int((width - float64(len(hint)*8)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(cfg.Pause.HintY), cfg.Pause.TextColor)
}
