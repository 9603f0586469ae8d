package meshing

import (
	"context"
	"sync"

	"voxcraft/internal/world"
)

// MeshJob asks a worker to rebuild one chunk mesh.
type MeshJob struct {
	World    *world.World
	Textures TextureLookup
	Mesh     *ChunkMesh
	// Result channel - will be sent the result when done
	ResultChan chan MeshResult
}

// MeshResult contains the result of a meshing operation
type MeshResult struct {
	ID      uint32
	Rebuilt bool
	Faces   int
	Error   error
}

// WorkerPool manages goroutines for mesh generation
type WorkerPool struct {
	jobQueue chan MeshJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a new mesh worker pool
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
		workers:  max(workers, 1),
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := range pool.workers {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// SubmitJobBlocking submits a job and blocks until it's queued, the pool
// shuts down or ctx is done.
func (p *WorkerPool) SubmitJobBlocking(ctx context.Context, job MeshJob) error {
	if p.ctx.Err() != nil {
		return context.Canceled
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-p.ctx.Done():
		return context.Canceled
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *WorkerPool) worker(int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			rebuilt, err := job.Mesh.Rebuild(job.World, job.Textures)
			result := MeshResult{
				ID:      job.Mesh.ID,
				Rebuilt: rebuilt,
				Faces:   len(job.Mesh.Faces()),
				Error:   err,
			}

			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them. Queued jobs are dropped.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

func (p *WorkerPool) Workers() int {
	return p.workers
}
