package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Chipmunk simulates the horizontal X/Z plane; the vertical axis is
// integrated by the physics system.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Width  float64
	Depth  float64
	Height float64
	Radius float64
	Mass   float64

	Friction   float64
	Elasticity float64
	Static     bool
	Sensor     bool
	UseGravity bool

	// Velocity is written by controllers before the step and holds the
	// resolved velocity after it.
	Velocity mgl64.Vec3
}

// Top returns the world height of the upper face for a body based at y.
func (p PhysicsBody) Top(y float64) float64 {
	return y + p.Height
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
