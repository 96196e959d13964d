package component

import "github.com/go-gl/mathgl/mgl64"

// PuzzlePiece is a movable object restored on softlock recovery.
type PuzzlePiece struct {
	Index      int
	Initial    mgl64.Vec3
	InitialYaw float64
}

var PuzzlePieceComponent = NewComponent[PuzzlePiece]()
