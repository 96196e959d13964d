package component

import "github.com/go-gl/mathgl/mgl64"

// Camera follows a target at a fixed offset. Shake is added on top of the
// transform when drawing.
type Camera struct {
	Target     uint64
	Offset     mgl64.Vec3
	Smoothness float64
	Zoom       float64
	Shake      mgl64.Vec3
}

var CameraComponent = NewComponent[Camera]()
