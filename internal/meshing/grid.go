package meshing

import (
	"context"
	"time"

	"voxcraft/internal/world"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Stats describes one RebuildDirty pass.
type Stats struct {
	Chunks   int
	Rebuilt  int
	Faces    int
	Duration time.Duration
}

// ChunkGrid owns the meshes of every chunk of a world and keeps them in
// step with block edits.
type ChunkGrid struct {
	world    *world.World
	textures TextureLookup
	log      *zap.Logger
	pool     *WorkerPool

	cw, ch, cd int
	meshes     []*ChunkMesh
}

// NewChunkGrid creates a dirty mesh per chunk and subscribes to world changes.
func NewChunkGrid(w *world.World, textures TextureLookup, workers int, log *zap.Logger) *ChunkGrid {
	g := &ChunkGrid{
		world:    w,
		textures: textures,
		log:      log.Named("meshing"),
		cw:       w.Width / world.ChunkSize,
		ch:       w.Height / world.ChunkSize,
		cd:       w.Depth / world.ChunkSize,
	}
	g.meshes = make([]*ChunkMesh, g.cw*g.ch*g.cd)
	for y := range g.ch {
		for x := range g.cw {
			for z := range g.cd {
				id := g.id(x, y, z)
				g.meshes[id] = NewChunkMesh(uint32(id), x, y, z)
			}
		}
	}
	g.pool = NewWorkerPool(workers, len(g.meshes))
	w.AddChangeListener(g)
	g.log.Debug("Chunk grid created",
		zap.Int("chunks", len(g.meshes)), zap.Int("workers", g.pool.Workers()))
	return g
}

// Close unsubscribes from the world and stops the workers.
func (g *ChunkGrid) Close() {
	g.world.RemoveChangeListener(g)
	g.pool.Shutdown()
}

func (g *ChunkGrid) id(cx, cy, cz int) int {
	return cy*g.cw*g.cd + cx*g.cd + cz
}

// Dimensions returns the grid size in chunks.
func (g *ChunkGrid) Dimensions() (cw, ch, cd int) {
	return g.cw, g.ch, g.cd
}

// Chunk returns the mesh at chunk coordinates, nil outside the grid.
func (g *ChunkGrid) Chunk(cx, cy, cz int) *ChunkMesh {
	if cx < 0 || cy < 0 || cz < 0 || cx >= g.cw || cy >= g.ch || cz >= g.cd {
		return nil
	}
	return g.meshes[g.id(cx, cy, cz)]
}

// Meshes returns all meshes in ID order.
func (g *ChunkGrid) Meshes() []*ChunkMesh {
	return g.meshes
}

// MarkRegion marks every chunk touching the inclusive block box dirty.
func (g *ChunkGrid) MarkRegion(x0, y0, z0, x1, y1, z1 int) {
	cx0, cx1 := clampChunk(x0, g.cw), clampChunk(x1, g.cw)
	cy0, cy1 := clampChunk(y0, g.ch), clampChunk(y1, g.ch)
	cz0, cz1 := clampChunk(z0, g.cd), clampChunk(z1, g.cd)
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			for cz := cz0; cz <= cz1; cz++ {
				g.meshes[g.id(cx, cy, cz)].MarkDirty()
			}
		}
	}
}

func clampChunk(v, n int) int {
	c := v / world.ChunkSize
	if v < 0 {
		c = 0
	}
	return min(c, n-1)
}

func (g *ChunkGrid) BlockChanged(x, y, z int) {
	g.MarkRegion(x-1, y-1, z-1, x+1, y+1, z+1)
}

func (g *ChunkGrid) LightColumnChanged(x, z, yFrom, yTo int) {
	g.MarkRegion(x-1, yFrom-1, z-1, x+1, yTo+1, z+1)
}

func (g *ChunkGrid) AllChanged() {
	for _, m := range g.meshes {
		m.MarkDirty()
	}
}

// DirtyCount returns how many meshes wait for a rebuild.
func (g *ChunkGrid) DirtyCount() int {
	n := 0
	for _, m := range g.meshes {
		if m.Dirty() {
			n++
		}
	}
	return n
}

// RebuildDirty rebuilds every dirty mesh on the worker pool and waits for
// them. Errors from single chunks are combined; the other chunks still
// rebuild.
func (g *ChunkGrid) RebuildDirty(ctx context.Context) (Stats, error) {
	start := time.Now()
	stats := Stats{Chunks: len(g.meshes)}

	results := make(chan MeshResult, len(g.meshes))
	submitted := 0
	var err error
	for _, m := range g.meshes {
		if !m.Dirty() {
			continue
		}
		job := MeshJob{World: g.world, Textures: g.textures, Mesh: m, ResultChan: results}
		if serr := g.pool.SubmitJobBlocking(ctx, job); serr != nil {
			err = multierr.Append(err, serr)
			break
		}
		submitted++
	}

	for range submitted {
		select {
		case r := <-results:
			if r.Error != nil {
				err = multierr.Append(err, r.Error)
			}
			if r.Rebuilt {
				stats.Rebuilt++
			}
		case <-ctx.Done():
			return stats, multierr.Append(err, ctx.Err())
		}
	}

	for _, m := range g.meshes {
		stats.Faces += len(m.Faces())
	}
	stats.Duration = time.Since(start)
	if stats.Rebuilt > 0 {
		g.log.Debug("Rebuilt chunk meshes",
			zap.Int("rebuilt", stats.Rebuilt), zap.Int("faces", stats.Faces), zap.Duration("elapsed", stats.Duration))
	}
	return stats, err
}
