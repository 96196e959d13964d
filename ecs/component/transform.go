package component

import "github.com/go-gl/mathgl/mgl64"

// Transform places an entity in world space. Position is the base of the
// object (X and Z horizontal, Y up). Yaw is the heading in degrees.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
	Scale    float64
}

var TransformComponent = NewComponent[Transform]()
