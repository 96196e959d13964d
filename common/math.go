package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Repeat wraps t into [0, length).
func Repeat(t, length float64) float64 {
	return t - math.Floor(t/length)*length
}

// DeltaAngle is the shortest signed difference between two angles in degrees.
func DeltaAngle(current, target float64) float64 {
	d := Repeat(target-current, 360)
	if d > 180 {
		d -= 360
	}
	return d
}

// SmoothDamp moves current toward target with a critically damped spring.
// velocity carries the spring state between calls.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, maxSpeed, dt float64) float64 {
	if dt <= 0 || velocity == nil {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	originalTo := target
	maxChange := maxSpeed * smoothTime
	change = math.Max(-maxChange, math.Min(change, maxChange))
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	out := target + (change+temp)*exp

	// no overshoot
	if (originalTo-current > 0) == (out > originalTo) {
		out = originalTo
		*velocity = (out - originalTo) / dt
	}
	return out
}

// SmoothDampAngle is SmoothDamp over degrees, taking the short way round.
func SmoothDampAngle(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, math.Inf(1), dt)
}

// HeadingTo is the yaw in degrees that faces along dir on the X/Z plane.
// Zero yaw faces +Z.
func HeadingTo(dir mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(dir.X(), dir.Z()))
}

// Forward is the unit X/Z direction of a yaw in degrees.
func Forward(yaw float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yaw)
	return mgl64.Vec3{math.Sin(r), 0, math.Cos(r)}
}

// Horizontal drops the vertical component of v.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// HorizontalDistance is the X/Z distance between a and b.
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	return Horizontal(b.Sub(a)).Len()
}
