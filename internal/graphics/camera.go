package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices
type Camera struct {
	AspectRatio float32
	// FOV is the vertical field of view in degrees.
	FOV       float32
	NearPlane float32
	FarPlane  float32

	Position mgl32.Vec3
	Facing   mgl32.Vec3

	View           mgl32.Mat4
	Projection     mgl32.Mat4
	ViewProjection mgl32.Mat4
}

func NewCamera(width, height int, fov, near, far float32) *Camera {
	c := &Camera{
		FOV:       fov,
		NearPlane: near,
		FarPlane:  far,
		Facing:    mgl32.Vec3{0, 0, -1},
	}
	c.SetViewport(width, height)
	c.Update(c.Position, c.Facing)
	return c
}

// SetViewport updates the aspect ratio. A zero height (minimised window)
// keeps the previous ratio.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// Update moves the camera and recomputes its matrices.
func (c *Camera) Update(position, facing mgl32.Vec3) {
	c.Position = position
	if facing.Len() > 0 {
		c.Facing = facing.Normalize()
	}
	c.View = mgl32.LookAtV(c.Position, c.Position.Add(c.Facing), mgl32.Vec3{0, 1, 0})
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
	c.ViewProjection = c.Projection.Mul4(c.View)
}

// Pick walks from the camera along its facing in stepSize increments and
// returns the first point for which hit reports an intersection.
func (c *Camera) Pick(stepSize, maxDistance float32, hit func(from, to mgl32.Vec3) bool) (mgl32.Vec3, bool) {
	if stepSize <= 0 {
		return mgl32.Vec3{}, false
	}
	step := c.Facing.Mul(stepSize)
	current := c.Position.Add(step)
	for current.Sub(c.Position).Len() <= maxDistance {
		if hit(c.Position, current) {
			return current, true
		}
		current = current.Add(step)
	}
	return mgl32.Vec3{}, false
}
