package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// InputState is the polled input of one frame as seen by the camera.
type InputState struct {
	Forward, Back, Left, Right bool

	// Scroll is the vertical wheel delta accumulated during the frame.
	Scroll float64

	// Rotate is true while the rotation trigger (right mouse button) is held.
	Rotate     bool
	MouseDelta mgl32.Vec2
}

// MoveChannel identifies which movement input was applied in a frame.
type MoveChannel int

const (
	MoveNone MoveChannel = iota
	MoveForward
	MoveBack
	MoveLeft
	MoveRight
	ZoomIn
	ZoomOut
)

func (m MoveChannel) String() string {
	switch m {
	case MoveForward:
		return "forward"
	case MoveBack:
		return "back"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case ZoomIn:
		return "zoom-in"
	case ZoomOut:
		return "zoom-out"
	}
	return "none"
}

// Camera accumulates pan and rotation from frame input. It orbits the scene
// origin from a fixed Distance; Pan shifts the whole view.
type Camera struct {
	Yaw   float32 // rotation about X, radians
	Pitch float32 // rotation about Y, radians
	Pan   mgl32.Vec3

	MoveSpeed   float32
	ZoomSpeed   float32
	Sensitivity float32
	Distance    float32

	FOV  float32 // vertical, degrees
	Near float32
	Far  float32
}

func NewCamera() *Camera {
	return &Camera{
		MoveSpeed:   5.0,
		ZoomSpeed:   200.0,
		Sensitivity: 0.5,
		Distance:    18.0,
		FOV:         45.0,
		Near:        0.1,
		Far:         100.0,
	}
}

// Update applies one frame of input scaled by dt seconds.
//
// Movement keys and the scroll wheel form a single priority chain
// (W, S, A, D, wheel up, wheel down): only the first active input moves the
// camera in a given frame. Rotation is applied independently of the chain.
func (c *Camera) Update(in InputState, dt float32) MoveChannel {
	move := c.MoveSpeed * dt
	channel := MoveNone

	switch {
	case in.Forward:
		c.Pan[1] -= move
		channel = MoveForward
	case in.Back:
		c.Pan[1] += move
		channel = MoveBack
	case in.Left:
		c.Pan[0] += move
		channel = MoveLeft
	case in.Right:
		c.Pan[0] -= move
		channel = MoveRight
	case in.Scroll > 0:
		c.Pan[2] += c.ZoomSpeed * dt
		channel = ZoomIn
	case in.Scroll < 0:
		c.Pan[2] -= c.ZoomSpeed * dt
		channel = ZoomOut
	}

	if in.Rotate {
		// Vertical mouse motion drives Yaw (about X), horizontal drives Pitch.
		c.Yaw = wrapAngle(c.Yaw + in.MouseDelta.Y()*dt*c.Sensitivity)
		c.Pitch = wrapAngle(c.Pitch + in.MouseDelta.X()*dt*c.Sensitivity)
	}
	return channel
}

// Reset returns the camera to its starting pose. Rates are kept.
func (c *Camera) Reset() {
	c.Yaw = 0
	c.Pitch = 0
	c.Pan = mgl32.Vec3{}
}

// ViewMatrix moves the scene back by Distance (plus pan), then rotates it
// about the origin: T · Ry(Pitch) · Rx(Yaw).
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(c.Pan.X(), c.Pan.Y(), -c.Distance+c.Pan.Z())
	return t.Mul4(mgl32.HomogRotate3DY(c.Pitch)).Mul4(mgl32.HomogRotate3DX(c.Yaw))
}

func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return Projection(c.FOV, aspect, c.Near, c.Far)
}

// wrapAngle maps a into [-π, π]; float32 rounding may land exactly on π.
func wrapAngle(a float32) float32 {
	const twoPi = 2 * math.Pi
	w := math.Mod(float64(a)+math.Pi, twoPi)
	if w < 0 {
		w += twoPi
	}
	return float32(w - math.Pi)
}
