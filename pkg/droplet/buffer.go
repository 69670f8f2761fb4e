package droplet

import (
	"image"
	"math"
)

// PixelBuffer is the working raster: a fixed-size luminance plane with
// float64 precision so intermediate stages don't accumulate quantization
// error. Each pipeline stage consumes the previous buffer and produces or
// mutates the next; buffers are never shared across concurrent jobs.
type PixelBuffer struct {
	W, H int
	Pix  []float64 // row-major, len W*H
}

// NewPixelBuffer allocates a zeroed buffer.
func NewPixelBuffer(w, h int) *PixelBuffer {
	return &PixelBuffer{W: w, H: h, Pix: make([]float64, w*h)}
}

// At returns the value at (x, y). No bounds checking.
func (b *PixelBuffer) At(x, y int) float64 {
	return b.Pix[y*b.W+x]
}

// Set stores v at (x, y). No bounds checking.
func (b *PixelBuffer) Set(x, y int, v float64) {
	b.Pix[y*b.W+x] = v
}

// Fill sets every pixel to v.
func (b *PixelBuffer) Fill(v float64) {
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	out := &PixelBuffer{W: b.W, H: b.H, Pix: make([]float64, len(b.Pix))}
	copy(out.Pix, b.Pix)
	return out
}

// Clamp clips every pixel to the valid channel range.
func (b *PixelBuffer) Clamp() {
	for i, v := range b.Pix {
		b.Pix[i] = clampChannel(v)
	}
}

// ToImage quantizes the buffer to an 8-bit grayscale image.
func (b *PixelBuffer) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.W, b.H))
	for y := 0; y < b.H; y++ {
		row := y * b.W
		for x := 0; x < b.W; x++ {
			img.Pix[img.Stride*y+x] = uint8(clampChannel(math.Round(b.Pix[row+x])))
		}
	}
	return img
}

func clampChannel(v float64) float64 {
	return math.Min(ChannelMax, math.Max(ChannelMin, v))
}
