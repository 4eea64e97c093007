package systems

import (
	"math"

	"github.com/quailstudio/slingshock/components"
	"github.com/quailstudio/slingshock/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// The intro pan owns the camera until its sequence finishes.
	if camera.Panning {
		if tw := components.Tween.Get(cameraEntry); tw != nil {
			x, _, done := tw.Update(float32(config.Physics.TimeStep))
			camera.Position.X = float64(x)
			if done {
				camera.Panning = false
			}
		} else {
			camera.Panning = false
		}
		updateScreenShake(cameraEntry, camera)
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	targetX, targetY := cameraTarget(e)

	// Camera bounds: the level always fills the screen.
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	targetX = math.Max(screenWidth/2, math.Min(levelWidth-screenWidth/2, targetX))
	targetY = math.Max(screenHeight/2, math.Min(levelHeight-screenHeight/2, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing

	updateScreenShake(cameraEntry, camera)
}

// cameraTarget picks what the camera should chase: a bird in flight, or
// the slingshot anchor between launches.
func cameraTarget(e *ecs.ECS) (float64, float64) {
	var flying *components.BodyData
	components.Bird.Each(e.World, func(entry *donburi.Entry) {
		if components.Bird.Get(entry).State == components.BirdFlying {
			flying = components.Body.Get(entry)
		}
	})
	if flying != nil {
		return flying.Position.X, flying.Position.Y
	}

	if slingEntry, ok := components.Slingshot.First(e.World); ok {
		anchor := components.Slingshot.Get(slingEntry).Anchor
		return anchor.X, anchor.Y
	}
	return 0, 0
}

// updateScreenShake applies a decaying oscillating offset and removes the
// component when the shake runs out.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect on the camera.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override with a stronger shake.
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
