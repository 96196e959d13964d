package component

// CameraShakeRequest asks the camera system to shake for a number of
// frames. Intensity is in world units.
type CameraShakeRequest struct {
	Frames    int
	Intensity float64
}

var CameraShakeRequestComponent = NewComponent[CameraShakeRequest]()
