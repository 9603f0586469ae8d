package player

import (
	"math"
	"math/rand/v2"

	"voxcraft/internal/physics"
	"voxcraft/internal/profiling"
	"voxcraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	GroundSpeed = 1.2
	AirSpeed    = GroundSpeed / 4.0
	JumpPower   = 15.0

	Width     = 0.6
	Height    = 1.8
	EyeHeight = 1.62

	Reach            = 4.0
	MouseSensitivity = 0.15

	// per physics step
	HorizontalDrag = 0.91
	VerticalDrag   = 0.98
	GroundFriction = 0.8

	// MaxPitch keeps the view just short of straight up or down.
	MaxPitch = math.Pi/2 - 0.1

	spawnHeight   = 10.0
	maxFrameDelta = 0.25
	airThreshold  = 0.0001
)

// Player is a first-person walker that collides with world blocks.
type Player struct {
	world *world.World
	rng   *rand.Rand
	env   *physics.Environment

	Position mgl32.Vec3
	Velocity mgl32.Vec3
	InAir    bool

	pitch, yaw float32
	facing     mgl32.Vec3
	input      mgl32.Vec3
}

// New places a player at a random spot above the world. A nil rng uses a
// randomly seeded source.
func New(w *world.World, rng *rand.Rand) *Player {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	p := &Player{
		world: w,
		rng:   rng,
		env:   physics.NewEnvironment(),
		InAir: true,
	}
	p.env.Add(p)
	p.Look(0, 0)
	p.ResetPosition()
	return p
}

// ResetPosition drops the player from above a random column.
func (p *Player) ResetPosition() {
	p.Position = mgl32.Vec3{
		p.rng.Float32() * float32(p.world.Width),
		float32(p.world.Height) + spawnHeight,
		p.rng.Float32() * float32(p.world.Depth),
	}
	p.Velocity = mgl32.Vec3{}
	p.InAir = true
}

// SpawnOnGround moves the player onto the highest block of its column.
func (p *Player) SpawnOnGround() {
	p.Position[1] = physics.FindGroundLevel(p.world, p.Position.X(), p.Position.Z())
	p.Velocity = mgl32.Vec3{}
}

// SetInput sets the walking direction: forward is +1 ahead and -1 back,
// strafe is +1 right and -1 left.
func (p *Player) SetInput(forward, strafe float32) {
	p.input = mgl32.Vec3{strafe, 0, forward}
}

// Jump starts a jump when standing on something.
func (p *Player) Jump() {
	if !p.InAir {
		p.Velocity[1] = JumpPower
	}
}

// Look turns the view by a mouse movement in pixels.
func (p *Player) Look(dx, dy float32) {
	const toRad = MouseSensitivity * math.Pi / 180.0
	p.pitch = mgl32.Clamp(p.pitch+dy*toRad, -MaxPitch, MaxPitch)
	p.yaw += dx * toRad

	sp, cp := math.Sincos(float64(p.pitch))
	sy, cy := math.Sincos(float64(p.yaw))
	p.facing = mgl32.Vec3{float32(cy * cp), float32(-sp), float32(sy * cp)}
}

// Pitch returns the vertical view angle in radians, positive looking down.
func (p *Player) Pitch() float32 {
	return p.pitch
}

func (p *Player) Yaw() float32 {
	return p.yaw
}

// Update advances the simulation by delta seconds in fixed physics steps.
func (p *Player) Update(delta float32) {
	defer profiling.Track("player.Update")()
	p.env.Update(min(delta, maxFrameDelta))
}

// Tick runs one physics step.
func (p *Player) Tick(dt, _ float32) {
	speed := float32(GroundSpeed)
	if p.InAir {
		speed = AirSpeed
	}
	p.accelerate(speed)
	p.Velocity[1] -= physics.Gravity * dt
	p.move(p.Velocity.Mul(dt))

	p.Velocity[0] *= HorizontalDrag
	p.Velocity[1] *= VerticalDrag
	p.Velocity[2] *= HorizontalDrag
	if !p.InAir {
		p.Velocity[0] *= GroundFriction
		p.Velocity[2] *= GroundFriction
	}
}

func (p *Player) accelerate(speed float32) {
	l := p.input.LenSqr()
	if l < 0.01 {
		return
	}
	v := speed / float32(math.Sqrt(float64(l)))

	forward := mgl32.Vec3{p.facing.X(), 0, p.facing.Z()}.Normalize()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	p.Velocity = p.Velocity.Add(forward.Mul(p.input.Z() * v)).Add(right.Mul(p.input.X() * v))
}

// Bounds returns the player's box at its feet position pos.
func Bounds(pos mgl32.Vec3) physics.Cubeoid {
	return physics.Cubeoid{
		Min: mgl32.Vec3{pos.X() - Width/2, pos.Y(), pos.Z() - Width/2},
		Max: mgl32.Vec3{pos.X() + Width/2, pos.Y() + Height, pos.Z() + Width/2},
	}
}

// move applies dist, cancelling the axis that gets the player out of each
// block it would overlap with the smallest correction.
func (p *Player) move(dist mgl32.Vec3) {
	moved := Bounds(p.Position.Add(dist))
	candidates := physics.BlocksInRange(p.world, physics.AABB{Min: moved.Min, Max: moved.Max})

	for _, c := range candidates {
		block := physics.Cubeoid{Min: c.Min, Max: c.Max}
		box := Bounds(p.Position.Add(dist))
		if !box.Intersects(block) {
			continue
		}
		best := physics.Best(
			physics.ResolveAxis(box, block, 0, dist.X()),
			physics.ResolveAxis(box, block, 1, dist.Y()),
			physics.ResolveAxis(box, block, 2, dist.Z()),
		)
		if !best.Blocks() {
			continue
		}
		mask := best.Mask()
		dist = mgl32.Vec3{dist.X() * mask.X(), dist.Y() * mask.Y(), dist.Z() * mask.Z()}
		switch {
		case best.Axis.X() != 0:
			p.Velocity[0] = 0
		case best.Axis.Y() != 0:
			p.Velocity[1] = 0
		case best.Axis.Z() != 0:
			p.Velocity[2] = 0
		}
	}

	p.InAir = math.Abs(float64(dist.Y())) > airThreshold
	p.Position = p.Position.Add(dist)
}

// Eyes is the camera position.
func (p *Player) Eyes() mgl32.Vec3 {
	return p.Position.Add(mgl32.Vec3{0, EyeHeight, 0})
}

// Facing is the unit view direction.
func (p *Player) Facing() mgl32.Vec3 {
	return p.facing
}

// Target returns the block under the crosshair within reach.
func (p *Player) Target() physics.HitResult {
	return physics.Raycast(p.Eyes(), p.facing, physics.MinReachDistance, Reach, p.world)
}

// BreakTarget removes the targeted block. It reports whether a block was removed.
func (p *Player) BreakTarget() bool {
	t := p.Target()
	if !t.Hit {
		return false
	}
	p.world.SetBlock(t.Position[0], t.Position[1], t.Position[2], world.BlockTypeAir)
	return true
}

// PlaceAtTarget puts b in front of the targeted face. Placing into the
// player's own body is refused.
func (p *Player) PlaceAtTarget(b world.BlockType) bool {
	t := p.Target()
	if !t.Hit {
		return false
	}
	x, y, z := t.Previous[0], t.Previous[1], t.Previous[2]
	cell := physics.BlockAABB(x, y, z)
	if Bounds(p.Position).Intersects(physics.Cubeoid{Min: cell.Min, Max: cell.Max}) {
		return false
	}
	if p.world.IsBlock(x, y, z) {
		return false
	}
	p.world.SetBlock(x, y, z, b)
	return p.world.Block(x, y, z) == b
}
