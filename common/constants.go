package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate.
	TPS       = 60
	FrameTime = 1.0 / TPS

	Gravity = -9.81
)
