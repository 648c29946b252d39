package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gobezier/common"
)

const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0

	MaxPitch = 89.0
	MinZoom  = 1.0
	MaxZoom  = 45.0
)

type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Camera is a free-fly camera driven by yaw/pitch euler angles.
// Angles and Zoom are kept in degrees.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw              float32
	Pitch            float32
	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
}

func NewCamera(position, up mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		Position:         position,
		Front:            mgl32.Vec3{0, 0, -1},
		WorldUp:          up,
		Yaw:              yaw,
		Pitch:            pitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	c.updateCameraVectors()
	return c
}

// NewDefaultCamera places a camera at position looking down -z.
func NewDefaultCamera(position mgl32.Vec3) *Camera {
	return NewCamera(position, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Projection builds the perspective matrix using Zoom as vertical field of view.
func (c *Camera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

func (c *Camera) ApplyMovement(direction Movement, dt float32) {
	velocity := c.MovementSpeed * dt
	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

func (c *Camera) ApplyLook(dx, dy float32, constrainPitch bool) {
	c.Yaw += dx * c.MouseSensitivity
	c.Pitch += dy * c.MouseSensitivity
	if constrainPitch {
		c.Pitch = common.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	}
	c.updateCameraVectors()
}

func (c *Camera) ApplyZoom(dy float32) {
	c.Zoom = common.Clamp(c.Zoom-dy, MinZoom, MaxZoom)
}

// LookAt turns the camera towards target. Pitch is clamped like a mouse look.
// A target equal to the camera position leaves the orientation untouched.
func (c *Camera) LookAt(target mgl32.Vec3) {
	d := target.Sub(c.Position)
	if d.Len() < common.Epsilon {
		return
	}
	d = d.Normalize()
	c.Pitch = common.Clamp(common.Degrees(math32.Asin(d[1])), -MaxPitch, MaxPitch)
	c.Yaw = common.Degrees(math32.Atan2(d[2], d[0]))
	c.updateCameraVectors()
}

func (c *Camera) updateCameraVectors() {
	yaw := common.Radians(c.Yaw)
	pitch := common.Radians(c.Pitch)
	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
