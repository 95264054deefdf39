package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mcray/go-raytracer/pkg/record"
	"github.com/mcray/go-raytracer/pkg/renderer"
	"github.com/mcray/go-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "cornell", "Scene to render (see -help for the list)")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 400, "Image height in pixels")
	samples := flag.Int("samples", 200, "Samples per pixel")
	depth := flag.Int("depth", 50, "Maximum ray bounce depth")
	passes := flag.Int("passes", 1, "Number of accumulation passes")
	workers := flag.Int("workers", 0, "Render workers (0 = one per CPU)")
	seed := flag.Int64("seed", 42, "Base RNG seed")
	recordDir := flag.String("record", "", "Directory to record per-pass snapshots into (empty = off)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	log.Printf("Rendering scene %q at %dx%d, %d samples/pixel", *sceneName, *width, *height, *samples)

	aspectRatio := float64(*width) / float64(*height)
	selectedScene, err := scene.Build(*sceneName, aspectRatio)
	if err != nil {
		log.Fatalf("Error building scene: %v", err)
	}

	// Create output directory for this scene
	outputDir := filepath.Join("output", *sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}

	config := renderer.SamplingConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		TileSize:        64,
		NumWorkers:      *workers,
		Passes:          *passes,
		Seed:            *seed,
	}

	raytracer := renderer.NewRaytracer(selectedScene, *width, *height, config)
	raytracer.SetLogger(log.Default())

	// Optionally record each pass to a replayable bundle
	var onPass renderer.PassFunc
	if *recordDir != "" {
		recorder, manifest, err := record.NewWriter(*recordDir, *sceneName, *width, *height)
		if err != nil {
			log.Fatalf("Error opening recording: %v", err)
		}
		defer func() {
			if err := recorder.Close(); err != nil {
				log.Printf("Error closing recording: %v", err)
			}
		}()
		log.Printf("Recording passes to %s (%s)", recorder.Directory(), manifest.CreatedAt)

		onPass = func(stats renderer.RenderStats, fb *renderer.Framebuffer) {
			err := recorder.RecordPass(record.PassEvent{
				Pass:            stats.Pass,
				TotalPasses:     stats.TotalPasses,
				SamplesPerPixel: stats.SamplesPerPixel,
				ElapsedMs:       stats.Elapsed.Milliseconds(),
			}, fb.RawRGBA())
			if err != nil {
				log.Printf("Error recording pass %d: %v", stats.Pass, err)
			}
		}
	}

	startTime := time.Now()
	fb := raytracer.Render(onPass)
	log.Printf("Render completed in %v", time.Since(startTime).Round(time.Millisecond))

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		log.Fatalf("Error creating file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.Image()); err != nil {
		log.Fatalf("Error saving PNG: %v", err)
	}

	log.Printf("Render saved as %s", filename)
}
