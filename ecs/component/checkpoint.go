package component

import "github.com/go-gl/mathgl/mgl64"

// Checkpoint is where softlock recovery returns the player. It is captured
// at level start and not advanced afterwards.
type Checkpoint struct {
	Position mgl64.Vec3
}

var CheckpointComponent = NewComponent[Checkpoint]()

// Softlock tracks how long the player has been motionless.
type Softlock struct {
	Timeout   float64
	Threshold float64
	IdleTime  float64
	Resets    int
}

var SoftlockComponent = NewComponent[Softlock]()
