package physics

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis aligned box used for sweeping movement against blocks.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB builds a box from its corner coordinates.
func NewAABB(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	return AABB{Min: mgl32.Vec3{minX, minY, minZ}, Max: mgl32.Vec3{maxX, maxY, maxZ}}
}

// BlockAABB returns the unit box of the block at x,y,z.
func BlockAABB(x, y, z int) AABB {
	fx, fy, fz := float32(x), float32(y), float32(z)
	return NewAABB(fx, fy, fz, fx+1, fy+1, fz+1)
}

// Expand stretches the box in the direction of travel only.
func (b AABB) Expand(dir mgl32.Vec3) AABB {
	out := b
	for i := range 3 {
		if dir[i] < 0 {
			out.Min[i] += dir[i]
		} else if dir[i] > 0 {
			out.Max[i] += dir[i]
		}
	}
	return out
}

// Grow enlarges the box by amount on every side.
func (b AABB) Grow(amount mgl32.Vec3) AABB {
	return AABB{Min: b.Min.Sub(amount), Max: b.Max.Add(amount)}
}

// Move translates the box.
func (b AABB) Move(d mgl32.Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Intersects reports whether the interiors of two boxes overlap.
func (b AABB) Intersects(o AABB) bool {
	return canCollide(b.Min.X(), b.Max.X(), b.Min.Y(), b.Max.Y(), o.Min.X(), o.Max.X(), o.Min.Y(), o.Max.Y()) &&
		canCollide(b.Min.X(), b.Max.X(), b.Min.Z(), b.Max.Z(), o.Min.X(), o.Max.X(), o.Min.Z(), o.Max.Z()) &&
		canCollide(b.Min.Z(), b.Max.Z(), b.Min.Y(), b.Max.Y(), o.Min.Z(), o.Max.Z(), o.Min.Y(), o.Max.Y())
}

// ClipXCollide limits a movement dx of other along X so it stops at b.
func (b AABB) ClipXCollide(other AABB, dx float32) float32 {
	if !canCollide(b.Min.Z(), b.Max.Z(), b.Min.Y(), b.Max.Y(), other.Min.Z(), other.Max.Z(), other.Min.Y(), other.Max.Y()) {
		return dx
	}
	return clipAxis(b, other, 0, dx)
}

// ClipYCollide limits a movement dy of other along Y so it stops at b.
func (b AABB) ClipYCollide(other AABB, dy float32) float32 {
	if !canCollide(b.Min.X(), b.Max.X(), b.Min.Z(), b.Max.Z(), other.Min.X(), other.Max.X(), other.Min.Z(), other.Max.Z()) {
		return dy
	}
	return clipAxis(b, other, 1, dy)
}

// ClipZCollide limits a movement dz of other along Z so it stops at b.
func (b AABB) ClipZCollide(other AABB, dz float32) float32 {
	if !canCollide(b.Min.X(), b.Max.X(), b.Min.Y(), b.Max.Y(), other.Min.X(), other.Max.X(), other.Min.Y(), other.Max.Y()) {
		return dz
	}
	return clipAxis(b, other, 2, dz)
}

func clipAxis(b, other AABB, axis int, d float32) float32 {
	if d > 0 {
		if other.Max[axis] <= b.Min[axis] {
			if gap := b.Min[axis] - other.Max[axis]; gap < d {
				d = gap
			}
		}
	} else if d < 0 {
		if other.Min[axis] >= b.Max[axis] {
			if gap := b.Max[axis] - other.Min[axis]; gap > d {
				d = gap
			}
		}
	}
	return d
}

// canCollide checks overlap of two rectangles [a0,b0]x[c0,d0] and [a1,b1]x[c1,d1].
func canCollide(a0, b0, c0, d0, a1, b1, c1, d1 float32) bool {
	if b0 <= a1 || a0 >= b1 {
		return false
	}
	if d0 <= c1 || c0 >= d1 {
		return false
	}
	return true
}
