package renderer

import (
	"image"
	"math/rand"
	"time"

	"github.com/mcray/go-raytracer/pkg/core"
	"github.com/mcray/go-raytracer/pkg/integrator"
)

// Scene provides everything the renderer needs: a camera, the primitive
// tree root (typically a BVH), the light proxies for importance sampling,
// and the background color. Declared here to avoid a circular import with
// the scene package.
type Scene interface {
	Camera() *Camera
	World() core.Hittable
	Lights() core.DirectionSampler
	Background() core.Vec3
}

// SamplingConfig contains rendering configuration. The sample count per
// pixel is fixed and uniform; there is no adaptive sampling.
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	TileSize        int   // Edge length of worker tiles
	NumWorkers      int   // 0 = one worker per CPU
	Passes          int   // Number of accumulation passes (for preview/recording)
	Seed            int64 // Base RNG seed; per-tile seeds derive from it
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 200,
		MaxDepth:        50,
		TileSize:        64,
		NumWorkers:      0,
		Passes:          1,
		Seed:            42,
	}
}

// RenderStats describes a completed pass
type RenderStats struct {
	Pass            int           // 1-based pass number
	TotalPasses     int
	SamplesPerPixel int           // Cumulative samples accumulated so far
	Elapsed         time.Duration // Time since the render started
}

// PassFunc observes the framebuffer after each completed pass. The buffer
// must only be read, and only until the callback returns.
type PassFunc func(stats RenderStats, fb *Framebuffer)

// Raytracer drives the render: it cuts the image into tiles, dispatches
// them across the worker pool, and accumulates radiance samples.
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config SamplingConfig
	logger core.Logger
}

// NewRaytracer creates a raytracer for the given scene and image size
func NewRaytracer(scene Scene, width, height int, config SamplingConfig) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: config,
	}
}

// SetLogger installs a progress logger; nil disables logging
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Render runs all passes to completion and returns the framebuffer.
// onPass may be nil.
func (rt *Raytracer) Render(onPass PassFunc) *Framebuffer {
	fb := NewFramebuffer(rt.width, rt.height)
	tracer := integrator.NewPathTracer(rt.config.MaxDepth, rt.scene.Background())

	passes := rt.config.Passes
	if passes < 1 {
		passes = 1
	}

	start := time.Now()
	accumulated := 0
	for pass := 1; pass <= passes; pass++ {
		// Spread the fixed sample budget evenly over the passes
		samples := rt.config.SamplesPerPixel / passes
		if pass == passes {
			samples = rt.config.SamplesPerPixel - samples*(passes-1)
		}
		if samples <= 0 {
			continue
		}

		rt.renderPass(fb, tracer, pass, samples)
		accumulated += samples

		if rt.logger != nil {
			rt.logger.Printf("pass %d/%d complete (%d samples/pixel, %v elapsed)",
				pass, passes, accumulated, time.Since(start).Round(time.Millisecond))
		}
		if onPass != nil {
			onPass(RenderStats{
				Pass:            pass,
				TotalPasses:     passes,
				SamplesPerPixel: accumulated,
				Elapsed:         time.Since(start),
			}, fb)
		}
	}

	return fb
}

// renderPass dispatches every tile of the image once through the worker pool
func (rt *Raytracer) renderPass(fb *Framebuffer, tracer *integrator.PathTracer, pass, samples int) {
	tileSize := rt.config.TileSize
	if tileSize <= 0 {
		tileSize = 64
	}

	tilesX := (rt.width + tileSize - 1) / tileSize
	tilesY := (rt.height + tileSize - 1) / tileSize

	pool := NewWorkerPool(rt.config.NumWorkers, tilesX*tilesY, func(task TileTask) int64 {
		return rt.renderTile(fb, tracer, task)
	})
	pool.Start()

	taskID := 0
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			bounds := image.Rect(
				tx*tileSize, ty*tileSize,
				min((tx+1)*tileSize, rt.width),
				min((ty+1)*tileSize, rt.height),
			)
			pool.Submit(TileTask{
				ID:      taskID,
				Bounds:  bounds,
				Samples: samples,
				Seed:    rt.config.Seed + int64(pass)*1_000_003 + int64(taskID),
			})
			taskID++
		}
	}

	pool.Stop()
	for range pool.Results() {
		// Drain; per-tile stats are not reported individually
	}
}

// renderTile renders one tile with its own sampler, writing samples into the
// tile's disjoint region of the framebuffer
func (rt *Raytracer) renderTile(fb *Framebuffer, tracer *integrator.PathTracer, task TileTask) int64 {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(task.Seed)))
	camera := rt.scene.Camera()
	world := rt.scene.World()
	lights := rt.scene.Lights()

	var taken int64
	for y := task.Bounds.Min.Y; y < task.Bounds.Max.Y; y++ {
		for x := task.Bounds.Min.X; x < task.Bounds.Max.X; x++ {
			for s := 0; s < task.Samples; s++ {
				// Jittered sub-pixel position
				u := (float64(x) + sampler.Get1D()) / float64(rt.width-1)
				v := (float64(y) + sampler.Get1D()) / float64(rt.height-1)

				ray := camera.GetRay(u, v, sampler)
				fb.AddSample(x, y, tracer.RayColor(ray, world, lights, sampler))
				taken++
			}
		}
	}

	return taken
}
