package droplet

import "testing"

func TestShadeBrighterNearHighlight(t *testing.T) {
	spec := ContactAngleSpec{AngleDeg: 90, Radius: 100, Width: 300, Height: 300, BaselineFrac: 0.5}
	b := NewBoundary(spec)
	mask := RasterizeMask(b, spec.Width, spec.Height)
	light := DefaultLighting()

	shaded := Shade(mask, b, light)

	// Highlight sits 0.45*r above the center; compare against a mask pixel
	// near the contact line.
	near := shaded.At(150, 105)
	far := shaded.At(150, 148)
	if near <= far {
		t.Errorf("expected brighter pixel near highlight: near=%v far=%v", near, far)
	}
}

func TestShadeWithinChannelRange(t *testing.T) {
	spec := ContactAngleSpec{AngleDeg: 120, Radius: 80, Width: 300, Height: 300, BaselineFrac: 0.6}
	b := NewBoundary(spec).Perturb(PerturbationProfile{Seed: 3, Harmonics: 4, Amplitude: 0.1})
	mask := RasterizeMask(b, spec.Width, spec.Height)

	light := DefaultLighting()
	light.Intensity = 5 // force the clamp

	shaded := Shade(mask, b, light)
	for i, v := range shaded.Pix {
		if v < ChannelMin || v > ChannelMax {
			t.Fatalf("pixel %d out of range: %v", i, v)
		}
	}
}

func TestShadeRespectsAmbientFloor(t *testing.T) {
	spec := ContactAngleSpec{AngleDeg: 90, Radius: 100, Width: 300, Height: 300, BaselineFrac: 0.5}
	b := NewBoundary(spec)
	mask := RasterizeMask(b, spec.Width, spec.Height)
	light := DefaultLighting()

	floor := light.BaseLum + (light.HighlightLum-light.BaseLum)*light.Ambient
	shaded := Shade(mask, b, light)
	for y := 0; y < shaded.H; y++ {
		for x := 0; x < shaded.W; x++ {
			if mask.At(x, y) > 0 && shaded.At(x, y) < floor-1e-9 {
				t.Fatalf("pixel (%d,%d) below ambient floor: %v < %v", x, y, shaded.At(x, y), floor)
			}
		}
	}
}

func TestShadeValidate(t *testing.T) {
	light := DefaultLighting()
	light.Ambient = 1.2
	if err := light.Validate(); err == nil {
		t.Error("expected error for ambient >= 1")
	}

	light = DefaultLighting()
	light.Exponent = 0
	if err := light.Validate(); err == nil {
		t.Error("expected error for non-positive exponent")
	}
}
