package droplet

import (
	"math"
	"math/rand/v2"
)

// Blur applies a separable Gaussian convolution with the given standard
// deviation, preserving raster dimensions. Border pixels use clamp
// extension so edges are not artificially darkened: the kernel is
// normalized, which makes any spatially uniform region a fixed point of
// the convolution. Sigma of zero is a no-op.
func (b *PixelBuffer) Blur(sigma float64) {
	if sigma <= 0 {
		return
	}
	radius := int(math.Ceil(3 * sigma))
	if radius == 0 {
		return
	}

	kernel := make([]float64, 2*radius+1)
	var sum float64
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	tmp := make([]float64, len(b.Pix))

	// Horizontal pass.
	for y := 0; y < b.H; y++ {
		row := y * b.W
		for x := 0; x < b.W; x++ {
			var acc float64
			for i, k := range kernel {
				sx := clampIndex(x+i-radius, b.W)
				acc += k * b.Pix[row+sx]
			}
			tmp[row+x] = acc
		}
	}

	// Vertical pass.
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			var acc float64
			for i, k := range kernel {
				sy := clampIndex(y+i-radius, b.H)
				acc += k * tmp[sy*b.W+x]
			}
			b.Pix[y*b.W+x] = acc
		}
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// AddNoise applies additive Gaussian sensor noise drawn independently per
// pixel, then clips every channel to the valid range. A non-zero profile
// seed makes the noise reproducible; seed zero draws fresh randomness per
// call. The generator is scoped to this call either way.
func (b *PixelBuffer) AddNoise(profile NoiseProfile) {
	if profile.StdDev == 0 {
		return
	}

	var rng *rand.Rand
	if profile.Seed != 0 {
		rng = rand.New(rand.NewPCG(profile.Seed, 0))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	for i := range b.Pix {
		b.Pix[i] = clampChannel(b.Pix[i] + rng.NormFloat64()*profile.StdDev)
	}
}
