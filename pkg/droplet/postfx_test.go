package droplet

import (
	"math"
	"testing"
)

func TestBlurUniformFixedPoint(t *testing.T) {
	buf := NewPixelBuffer(64, 48)
	buf.Fill(123.5)
	buf.Blur(1.5)

	for i, v := range buf.Pix {
		if math.Abs(v-123.5) > 1e-9 {
			t.Fatalf("pixel %d changed: %v", i, v)
		}
	}
}

func TestBlurPreservesDimensions(t *testing.T) {
	buf := NewPixelBuffer(31, 17)
	buf.Blur(2.0)
	if buf.W != 31 || buf.H != 17 || len(buf.Pix) != 31*17 {
		t.Errorf("dimensions changed: %dx%d len %d", buf.W, buf.H, len(buf.Pix))
	}
}

func TestBlurSmoothsStep(t *testing.T) {
	buf := NewPixelBuffer(32, 1)
	for x := 16; x < 32; x++ {
		buf.Set(x, 0, 255)
	}
	buf.Blur(1.0)

	// The hard step must turn into a monotone ramp with intermediate values.
	if v := buf.At(15, 0); v <= 0 || v >= 255 {
		t.Errorf("expected intermediate value at the step, got %v", v)
	}
	for x := 1; x < 32; x++ {
		if buf.At(x, 0) < buf.At(x-1, 0)-1e-9 {
			t.Fatalf("blurred step not monotone at x=%d", x)
		}
	}
}

func TestBlurZeroSigmaNoOp(t *testing.T) {
	buf := NewPixelBuffer(8, 8)
	buf.Set(3, 4, 200)
	buf.Blur(0)
	if buf.At(3, 4) != 200 || buf.At(2, 4) != 0 {
		t.Error("zero sigma should not modify the buffer")
	}
}

func TestNoiseRange(t *testing.T) {
	for _, stddev := range []float64{5, 50, 500} {
		buf := NewPixelBuffer(40, 40)
		buf.Fill(128)
		buf.AddNoise(NoiseProfile{StdDev: stddev, Seed: 9})

		for i, v := range buf.Pix {
			if v < ChannelMin || v > ChannelMax {
				t.Fatalf("stddev %v: pixel %d out of range: %v", stddev, i, v)
			}
		}
	}
}

func TestNoiseDeterministicWithSeed(t *testing.T) {
	a := NewPixelBuffer(20, 20)
	a.Fill(100)
	b := a.Clone()

	a.AddNoise(NoiseProfile{StdDev: 6, Seed: 42})
	b.AddNoise(NoiseProfile{StdDev: 6, Seed: 42})

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel %d differs under identical seed: %v vs %v", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestNoiseFreshWithoutSeed(t *testing.T) {
	a := NewPixelBuffer(20, 20)
	a.Fill(100)
	b := a.Clone()

	a.AddNoise(NoiseProfile{StdDev: 6})
	b.AddNoise(NoiseProfile{StdDev: 6})

	same := true
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("unseeded noise produced identical buffers")
	}
}
