package world

import (
	"fmt"
	"sync"
)

const (
	// Chunk dimensions, chunks are cubes
	ChunkSize   = 16
	ChunkArea   = ChunkSize * ChunkSize
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// ChangeListener is notified about edits so that meshes can be rebuilt.
type ChangeListener interface {
	BlockChanged(x, y, z int)
	LightColumnChanged(x, z, yFrom, yTo int)
	AllChanged()
}

// World is a fixed-size block volume. Blocks are stored y-major:
// index = y*Width*Depth + x*Depth + z.
type World struct {
	Width  int
	Depth  int
	Height int

	mu          sync.RWMutex
	blocks      []BlockType
	lightDepths []int // per column, the y of the highest opaque block

	listeners []ChangeListener
}

// New creates an empty world. Every dimension must be a positive multiple
// of ChunkSize.
func New(width, depth, height int) (*World, error) {
	for _, d := range [...]int{width, depth, height} {
		if d <= 0 || d%ChunkSize != 0 {
			return nil, fmt.Errorf("world dimensions %dx%dx%d must be positive multiples of %d", width, depth, height, ChunkSize)
		}
	}
	w := &World{
		Width:       width,
		Depth:       depth,
		Height:      height,
		blocks:      make([]BlockType, width*height*depth),
		lightDepths: make([]int, width*depth),
	}
	return w, nil
}

// NewEmpty creates a single-chunk world used by tests and tools.
func NewEmpty() *World {
	w, _ := New(ChunkSize, ChunkSize, ChunkSize)
	return w
}

func (w *World) inBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < w.Width && y < w.Height && z < w.Depth
}

func (w *World) index(x, y, z int) int {
	return y*w.Width*w.Depth + x*w.Depth + z
}

// Volume returns the number of blocks in the world.
func (w *World) Volume() int {
	return len(w.blocks)
}

// Block returns the block at the given coordinates, air outside the world.
func (w *World) Block(x, y, z int) BlockType {
	if !w.inBounds(x, y, z) {
		return BlockTypeAir
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.blocks[w.index(x, y, z)]
}

// IsBlock reports whether a solid block occupies the cell.
func (w *World) IsBlock(x, y, z int) bool {
	return w.Block(x, y, z).IsSolid()
}

// IsTransparent reports whether light and sight pass through the cell.
func (w *World) IsTransparent(x, y, z int) bool {
	return !w.IsBlock(x, y, z)
}

// LightLevel returns 0 for cells below the column's light depth, 1
// otherwise. Cells outside the world are lit.
func (w *World) LightLevel(x, y, z int) uint32 {
	if !w.inBounds(x, y, z) {
		return 1
	}
	w.mu.RLock()
	depth := w.lightDepths[x*w.Depth+z]
	w.mu.RUnlock()
	if y < depth {
		return 0
	}
	return 1
}

// SetBlock changes a block, updates the light column and notifies
// listeners. Coordinates outside the world are ignored.
func (w *World) SetBlock(x, y, z int, b BlockType) {
	if !w.inBounds(x, y, z) {
		return
	}
	w.mu.Lock()
	w.blocks[w.index(x, y, z)] = b
	w.mu.Unlock()

	w.CalcLightDepths(x, z, 1, 1)
	for _, l := range w.listeners {
		l.BlockChanged(x, y, z)
	}
}

// CalcLightDepths recomputes the light depth of the columns in
// [x0,x0+width) × [z0,z0+depth) and reports every column that moved.
func (w *World) CalcLightDepths(x0, z0, width, depth int) {
	for x := x0; x < x0+width; x++ {
		for z := z0; z < z0+depth; z++ {
			if !w.inBounds(x, 0, z) {
				continue
			}
			y := w.Height - 1
			for y > 0 && w.IsTransparent(x, y, z) {
				y--
			}

			w.mu.Lock()
			old := w.lightDepths[x*w.Depth+z]
			w.lightDepths[x*w.Depth+z] = y
			w.mu.Unlock()

			if old == y {
				continue
			}
			for _, l := range w.listeners {
				l.LightColumnChanged(x, z, min(old, y), max(old, y))
			}
		}
	}
}

// AddChangeListener registers l for change notifications.
func (w *World) AddChangeListener(l ChangeListener) {
	w.listeners = append(w.listeners, l)
}

// RemoveChangeListener unregisters l.
func (w *World) RemoveChangeListener(l ChangeListener) {
	for i, existing := range w.listeners {
		if existing == l {
			w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
			return
		}
	}
}

func (w *World) notifyAll() {
	for _, l := range w.listeners {
		l.AllChanged()
	}
}

// CountBlocks returns the number of solid blocks.
func (w *World) CountBlocks() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	n := 0
	for _, b := range w.blocks {
		if b.IsSolid() {
			n++
		}
	}
	return n
}
