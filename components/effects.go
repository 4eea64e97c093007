package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks an active screen shake effect on the camera.
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames total
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// Tween holds a tween sequence driving an entity property, such as the
// camera's intro pan.
var Tween = donburi.NewComponentType[gween.Sequence]()

// PopupData is a floating score label that rises and fades out.
type PopupData struct {
	Text  string
	X, Y  float64 // spawn position in world coordinates
	Rise  *gween.Tween
	Fade  *gween.Tween
	Done  bool
	RiseY float32 // current rise offset
	Alpha float32 // current opacity
}

var Popup = donburi.NewComponentType[PopupData]()
