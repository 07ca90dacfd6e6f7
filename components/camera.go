package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the draw offset applied to every map-space position
type CameraData struct {
	Offset math.Vec2
	Shake  math.Vec2 // added on top of Offset while a shake is active
}

var Camera = donburi.NewComponentType[CameraData]()
