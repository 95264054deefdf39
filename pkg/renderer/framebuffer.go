package renderer

import (
	"image"
	"image/color"

	"github.com/mcray/go-raytracer/pkg/core"
)

// Framebuffer accumulates linear radiance samples per pixel. Workers write
// disjoint tile regions, so no locking is needed during a pass.
type Framebuffer struct {
	width, height int
	accum         []core.Vec3
	samples       []int
}

// NewFramebuffer creates an empty accumulation buffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:   width,
		height:  height,
		accum:   make([]core.Vec3, width*height),
		samples: make([]int, width*height),
	}
}

// Width returns the buffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// AddSample accumulates a radiance sample for pixel (x, y)
func (fb *Framebuffer) AddSample(x, y int, radiance core.Vec3) {
	i := y*fb.width + x
	fb.accum[i] = fb.accum[i].Add(radiance)
	fb.samples[i]++
}

// Pixel returns the averaged linear color of pixel (x, y)
func (fb *Framebuffer) Pixel(x, y int) core.Vec3 {
	i := y*fb.width + x
	if fb.samples[i] == 0 {
		return core.Vec3{}
	}
	return fb.accum[i].Multiply(1.0 / float64(fb.samples[i]))
}

// Image converts the accumulated buffer to an 8-bit RGBA image with gamma
// correction. Row 0 of the image is the top scanline.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, fb.height-1-y, vec3ToColor(fb.Pixel(x, y)))
		}
	}
	return img
}

// RawRGBA returns the gamma-corrected pixel data as a flat byte slice,
// suitable for compression and streaming
func (fb *Framebuffer) RawRGBA() []byte {
	return fb.Image().Pix
}

// vec3ToColor converts a linear color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Gamma 2.0, matching the square-root write-out of the accumulation loop
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
