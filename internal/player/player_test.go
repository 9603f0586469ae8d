package player

import (
	"math"
	"math/rand/v2"
	"testing"

	"voxcraft/internal/physics"
	"voxcraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func flatWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.New(16, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	// grass top at y=4, so feet rest at 5
	w.Generate(world.NewFlatGenerator(4))
	return w
}

func run(p *Player, seconds float32) {
	for elapsed := float32(0); elapsed < seconds; elapsed += 0.05 {
		p.Update(0.05)
	}
}

func TestNewPlayer(t *testing.T) {
	w := flatWorld(t)
	p := New(w, rand.New(rand.NewPCG(1, 2)))

	if p.Position.Y() != 26 {
		t.Errorf("spawn height = %v, want 26", p.Position.Y())
	}
	if x, z := p.Position.X(), p.Position.Z(); x < 0 || x >= 16 || z < 0 || z >= 16 {
		t.Errorf("spawn outside world: %v", p.Position)
	}
	if p.Facing() != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("initial facing = %v", p.Facing())
	}
	if d := p.Eyes().Y() - p.Position.Y(); math.Abs(float64(d-EyeHeight)) > 1e-5 {
		t.Error("eyes not at eye height")
	}
}

func TestLookClampsPitch(t *testing.T) {
	p := New(world.NewEmpty(), nil)
	p.Look(0, 1e6)
	if math.Abs(float64(p.Pitch()-MaxPitch)) > 1e-6 {
		t.Errorf("pitch = %v, want %v", p.Pitch(), MaxPitch)
	}
	if p.Facing().Y() >= 0 {
		t.Error("moving the mouse down must look down")
	}
	p.Look(0, -2e6)
	if math.Abs(float64(p.Pitch()+MaxPitch)) > 1e-6 {
		t.Errorf("pitch = %v, want %v", p.Pitch(), -MaxPitch)
	}

	p.Look(0, 1e6)
	p.Look(0, -p.Pitch()/(MouseSensitivity*math.Pi/180))
	p.Look(600, 0) // 90 degrees
	f := p.Facing()
	if math.Abs(float64(f.Z()-1)) > 1e-3 || math.Abs(float64(f.Len()-1)) > 1e-5 {
		t.Errorf("facing after quarter turn = %v", f)
	}
}

func TestFallsAndLands(t *testing.T) {
	w := flatWorld(t)
	p := New(w, nil)
	p.Position = mgl32.Vec3{8.5, 10, 8.5}

	run(p, 3)
	if y := p.Position.Y(); y < 5 || y > 5.1 {
		t.Errorf("resting height = %v, want about 5", y)
	}
	if p.InAir {
		t.Error("player still in air")
	}

	start := p.Position.Y()
	p.Jump()
	p.Update(0.05)
	if p.Position.Y() < start+0.3 {
		t.Errorf("jump rose to %v from %v", p.Position.Y(), start)
	}
	p.Jump() // mid-air jumps do nothing
	if p.Velocity.Y() >= JumpPower {
		t.Error("jumped while in air")
	}
}

func TestGravityStep(t *testing.T) {
	p := New(world.NewEmpty(), nil)
	p.Position = mgl32.Vec3{8.5, 20, 8.5}
	p.InAir = true

	p.Tick(physics.UpdateInterval, 0)
	want := -physics.Gravity * float32(physics.UpdateInterval) * VerticalDrag
	if math.Abs(float64(p.Velocity.Y()-want)) > 1e-6 {
		t.Errorf("vertical speed after one step = %v, want %v", p.Velocity.Y(), want)
	}
	if physics.Gravity != 32/0.8 {
		t.Errorf("gravity = %v", physics.Gravity)
	}
}

func TestWalkIntoWall(t *testing.T) {
	w := flatWorld(t)
	w.SetBlock(8, 5, 8, world.BlockTypeStone)
	w.SetBlock(8, 6, 8, world.BlockTypeStone)

	p := New(w, nil)
	p.Position = mgl32.Vec3{4.5, 5.0005, 8.5}
	p.SetInput(1, 0)
	run(p, 3)

	if x := p.Position.X(); x > 8-Width/2 || x < 7.5 {
		t.Errorf("stopped at x=%v, want just before 7.7", x)
	}
	if z := p.Position.Z(); math.Abs(float64(z-8.5)) > 1e-3 {
		t.Errorf("drifted sideways to z=%v", z)
	}
}

func TestBreakAndPlace(t *testing.T) {
	w := flatWorld(t)
	p := New(w, nil)
	p.Position = mgl32.Vec3{8.5, 5, 8.5}
	p.Look(0, 1e6) // straight-ish down

	target := p.Target()
	if !target.Hit || target.Position != [3]int{8, 4, 8} {
		t.Fatalf("target = %+v", target)
	}
	if !p.BreakTarget() || w.IsBlock(8, 4, 8) {
		t.Fatal("block not broken")
	}
	if next := p.Target(); next.Position != [3]int{8, 3, 8} {
		t.Errorf("next target = %v", next.Position)
	}
	if !p.PlaceAtTarget(world.BlockTypeStone) || w.Block(8, 4, 8) != world.BlockTypeStone {
		t.Error("block not placed back")
	}
}

func TestPlaceRefusedInsidePlayer(t *testing.T) {
	w := flatWorld(t)
	w.SetBlock(10, 6, 8, world.BlockTypeStone)
	p := New(w, nil)
	p.Position = mgl32.Vec3{9.5, 5, 8.5}

	target := p.Target()
	if !target.Hit || target.Previous != [3]int{9, 6, 8} {
		t.Fatalf("target = %+v", target)
	}
	if p.PlaceAtTarget(world.BlockTypeStone) {
		t.Error("placed a block inside the player")
	}
}

func TestNothingInReach(t *testing.T) {
	p := New(world.NewEmpty(), nil)
	p.Position = mgl32.Vec3{8, 8, 8}
	if p.BreakTarget() || p.PlaceAtTarget(world.BlockTypeGrass) {
		t.Error("acted on empty air")
	}
}

func TestResetPosition(t *testing.T) {
	w := flatWorld(t)
	p := New(w, rand.New(rand.NewPCG(3, 4)))
	p.Position = mgl32.Vec3{1, 1, 1}
	p.Velocity = mgl32.Vec3{1, 1, 1}
	p.ResetPosition()
	if p.Position.Y() != 26 || p.Velocity != (mgl32.Vec3{}) || !p.InAir {
		t.Errorf("reset to %v vel %v", p.Position, p.Velocity)
	}
	p.SpawnOnGround()
	if p.Position.Y() != 5 {
		t.Errorf("ground spawn at %v, want 5", p.Position.Y())
	}
}
