package physics

import (
	"math"

	"voxcraft/internal/world"
)

// BlocksInRange returns the unit boxes of every solid block touching
// bounds (expanded by one block on the max side), clamped to the world.
func BlocksInRange(w *world.World, bounds AABB) []AABB {
	x0 := max(int(bounds.Min.X()), 0)
	y0 := max(int(bounds.Min.Y()), 0)
	z0 := max(int(bounds.Min.Z()), 0)
	x1 := min(int(bounds.Max.X())+1, w.Width)
	y1 := min(int(bounds.Max.Y())+1, w.Height)
	z1 := min(int(bounds.Max.Z())+1, w.Depth)

	var found []AABB
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			for z := z0; z <= z1; z++ {
				if w.IsBlock(x, y, z) {
					found = append(found, BlockAABB(x, y, z))
				}
			}
		}
	}
	return found
}

// FindGroundLevel returns the y just above the highest solid block in the
// column under x,z, or 0 when the column is empty.
func FindGroundLevel(w *world.World, x, z float32) float32 {
	bx := int(math.Floor(float64(x)))
	bz := int(math.Floor(float64(z)))
	for y := w.Height - 1; y >= 0; y-- {
		if w.IsBlock(bx, y, bz) {
			return float32(y + 1)
		}
	}
	return 0
}
