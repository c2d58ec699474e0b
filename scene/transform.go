package scene

import "github.com/go-gl/mathgl/mgl32"

// DefaultSpinRate is the global spin in radians per second of wall-clock time.
const DefaultSpinRate = 0.4

// SpinAngle is the shared rotation angle at time t seconds.
func SpinAngle(t float64, rate float32) float32 {
	return float32(t) * rate
}

// SpinMatrix rotates about the vertical axis through the world origin.
func SpinMatrix(t float64, rate float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(SpinAngle(t, rate))
}

// LocalMatrix places the object: S · T(position). The scale also scales the
// translation, which is what stretches the pipes and posts into place.
func (d Descriptor) LocalMatrix() mgl32.Mat4 {
	return mgl32.Scale3D(d.Scale.X(), d.Scale.Y(), d.Scale.Z()).
		Mul4(mgl32.Translate3D(d.Position.X(), d.Position.Y(), d.Position.Z()))
}

// ModelMatrix applies the world-space spin after placement, so objects away
// from the origin orbit it instead of turning in place.
func ModelMatrix(d Descriptor, spin mgl32.Mat4) mgl32.Mat4 {
	return spin.Mul4(d.LocalMatrix())
}

// Projection builds a perspective matrix from a vertical FOV in degrees.
func Projection(fovDeg, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
}

// MVP composes projection · view · model.
func MVP(projection, view, model mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(view).Mul4(model)
}
