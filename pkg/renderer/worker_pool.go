package renderer

import (
	"image"
	"runtime"
	"sync"
)

// TileTask is a unit of work for the pool: a pixel region, the number of
// samples to take, and the RNG seed for this tile. Every task gets its own
// seed so workers never share generator state.
type TileTask struct {
	ID      int
	Bounds  image.Rectangle
	Samples int
	Seed    int64
}

// TileResult reports a completed tile
type TileResult struct {
	ID      int
	Samples int64 // Total samples taken across the tile
}

// RenderTileFunc renders a single tile and returns the samples taken
type RenderTileFunc func(task TileTask) int64

// WorkerPool renders tiles in parallel. Tiles have disjoint bounds, so
// workers write to the shared framebuffer without synchronization.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	render      RenderTileFunc
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool with the specified number of workers.
// Zero or negative means one worker per CPU.
func NewWorkerPool(numWorkers, queueSize int, render RenderTileFunc) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan TileTask, queueSize),
		resultQueue: make(chan TileResult, queueSize),
		numWorkers:  numWorkers,
		render:      render,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Submit queues a tile task
func (wp *WorkerPool) Submit(task TileTask) {
	wp.taskQueue <- task
}

// Stop signals no more tasks and waits for workers to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Results returns the channel of completed tile results
func (wp *WorkerPool) Results() <-chan TileResult {
	return wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		samples := wp.render(task)
		wp.resultQueue <- TileResult{ID: task.ID, Samples: samples}
	}
}
