package physics

import (
	"math"
	"testing"

	"voxcraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAABBExpandGrowMove(t *testing.T) {
	b := NewAABB(0, 0, 0, 1, 1, 1)

	e := b.Expand(mgl32.Vec3{-0.5, 2, 0})
	if e.Min != (mgl32.Vec3{-0.5, 0, 0}) || e.Max != (mgl32.Vec3{1, 3, 1}) {
		t.Errorf("Expand = %+v", e)
	}
	g := b.Grow(mgl32.Vec3{0.25, 0.25, 0.25})
	if g.Min != (mgl32.Vec3{-0.25, -0.25, -0.25}) || g.Max != (mgl32.Vec3{1.25, 1.25, 1.25}) {
		t.Errorf("Grow = %+v", g)
	}
	m := b.Move(mgl32.Vec3{1, 2, 3})
	if m != BlockAABB(1, 2, 3) {
		t.Errorf("Move = %+v", m)
	}
}

func TestAABBIntersects(t *testing.T) {
	a := BlockAABB(0, 0, 0)
	if a.Intersects(BlockAABB(1, 0, 0)) {
		t.Error("touching boxes must not intersect")
	}
	if !a.Intersects(NewAABB(0.5, 0.5, 0.5, 2, 2, 2)) {
		t.Error("overlapping boxes must intersect")
	}
}

func TestAABBClip(t *testing.T) {
	block := BlockAABB(2, 0, 0)
	mover := NewAABB(0, 0, 0, 1, 1, 1)

	if got := block.ClipXCollide(mover, 3); got != 1 {
		t.Errorf("ClipX +3 = %v, want 1", got)
	}
	if got := block.ClipXCollide(mover, 0.5); got != 0.5 {
		t.Errorf("ClipX +0.5 = %v, want 0.5", got)
	}
	if got := block.ClipXCollide(mover, -3); got != -3 {
		t.Errorf("ClipX away = %v, want -3", got)
	}
	// mover not in the block's YZ shadow
	if got := block.ClipXCollide(mover.Move(mgl32.Vec3{0, 5, 0}), 3); got != 3 {
		t.Errorf("ClipX missed = %v, want 3", got)
	}

	floor := BlockAABB(0, 0, 0)
	faller := NewAABB(0.2, 2, 0.2, 0.8, 3.8, 0.8)
	if got := floor.ClipYCollide(faller, -5); got != -1 {
		t.Errorf("ClipY -5 = %v, want -1", got)
	}
	wall := BlockAABB(0, 0, 3)
	walker := NewAABB(0.2, 0, 0.2, 0.8, 1.8, 0.8)
	if got := wall.ClipZCollide(walker, 4); math.Abs(float64(got-2.2)) > 1e-5 {
		t.Errorf("ClipZ 4 = %v, want 2.2", got)
	}
}

func TestCubeoidProjections(t *testing.T) {
	a := Cubeoid{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
	b := Cubeoid{Min: mgl32.Vec3{3, 0.5, 0.5}, Max: mgl32.Vec3{4, 1.5, 1.5}}
	if !a.XProjectionIntersects(b) {
		t.Error("YZ shadows overlap")
	}
	if a.YProjectionIntersects(b) || a.ZProjectionIntersects(b) || a.Intersects(b) {
		t.Error("boxes are apart on X")
	}
	if a.Center() != (mgl32.Vec3{0.5, 0.5, 0.5}) || b.Size() != (mgl32.Vec3{1, 1, 1}) {
		t.Error("center/size wrong")
	}
}

func TestResolveAxisAndBest(t *testing.T) {
	mover := Cubeoid{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
	block := Cubeoid{Min: mgl32.Vec3{1.5, 0, 0}, Max: mgl32.Vec3{2.5, 1, 1}}

	rx := ResolveAxis(mover, block, 0, 1)
	if !rx.Blocks() || rx.Axis != (mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("ResolveAxis X = %+v", rx)
	}
	if math.Abs(float64(rx.Scale-0.499)) > 1e-5 {
		t.Errorf("scale = %v, want 0.499", rx.Scale)
	}
	if rx.Mask() != (mgl32.Vec3{0, 1, 1}) {
		t.Errorf("mask = %v", rx.Mask())
	}
	if r := ResolveAxis(mover, block, 0, 0.2); r.Blocks() {
		t.Errorf("short move must not block: %+v", r)
	}
	if r := ResolveAxis(mover, block, 0, 0); r.Blocks() {
		t.Error("zero move must not block")
	}

	best := Best(NoResolution, Resolution{Axis: mgl32.Vec3{0, 1, 0}, Scale: -0.2}, rx)
	if best.Axis != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Best picked %+v", best)
	}
	if Best(NoResolution, NoResolution).Blocks() {
		t.Error("Best of nothing must not block")
	}
}

func TestBlocksInRange(t *testing.T) {
	w := world.NewEmpty()
	w.SetBlock(1, 0, 1, world.BlockTypeStone)
	w.SetBlock(2, 1, 1, world.BlockTypeStone)
	w.SetBlock(10, 10, 10, world.BlockTypeStone)

	got := BlocksInRange(w, NewAABB(0.5, 0, 0.5, 1.5, 1.5, 1.5))
	if len(got) != 2 {
		t.Fatalf("found %d blocks, want 2: %v", len(got), got)
	}
	if got[0] != BlockAABB(1, 0, 1) || got[1] != BlockAABB(2, 1, 1) {
		t.Errorf("blocks = %v", got)
	}
	if n := len(BlocksInRange(w, NewAABB(-5, -5, -5, -1, -1, -1))); n != 0 {
		t.Errorf("outside world found %d", n)
	}
}

func TestFindGroundLevel(t *testing.T) {
	w := world.NewEmpty()
	w.SetBlock(3, 6, 3, world.BlockTypeGrass)
	if g := FindGroundLevel(w, 3.4, 3.9); g != 7 {
		t.Errorf("ground = %v, want 7", g)
	}
	if g := FindGroundLevel(w, 0, 0); g != 0 {
		t.Errorf("empty column ground = %v, want 0", g)
	}
}

type countingObject struct {
	ticks int
	last  float32
}

func (c *countingObject) Tick(dt, total float32) {
	c.ticks++
	c.last = total
}

func TestEnvironmentFixedStep(t *testing.T) {
	env := NewEnvironment()
	obj := &countingObject{}
	env.Add(obj)
	hooks := 0
	env.StepHook = func(dt, pending float32) { hooks++ }

	if n := env.Update(0.012); n != 2 {
		t.Errorf("steps = %d, want 2", n)
	}
	if obj.ticks != 2 || hooks != 2 {
		t.Errorf("ticks=%d hooks=%d", obj.ticks, hooks)
	}
	// 0.002 remains, plus 0.004 makes one more step
	if n := env.Update(0.004); n != 1 {
		t.Errorf("carry-over steps = %d, want 1", n)
	}
	if p := env.Pending(); p < 0 || p > UpdateInterval {
		t.Errorf("pending = %v", p)
	}

	env.Remove(obj)
	env.Update(0.1)
	if obj.ticks != 3 {
		t.Errorf("removed object ticked: %d", obj.ticks)
	}
}
