package droplet

import (
	"math"
	"testing"

	"github.com/sessilelab/dropletgen/pkg/errors"
)

func testSpec(angle float64) ContactAngleSpec {
	return ContactAngleSpec{AngleDeg: angle, Radius: 240, Width: 800, Height: 900}
}

func TestValidateAngleRange(t *testing.T) {
	for _, angle := range []float64{-10, 0, 180, 200, math.NaN()} {
		spec := testSpec(angle)
		err := spec.Validate(0)
		if err == nil {
			t.Errorf("angle %v: expected error, got nil", angle)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidParameter) {
			t.Errorf("angle %v: expected INVALID_PARAMETER, got %v", angle, err)
		}
	}

	for _, angle := range []float64{0.5, 45, 90, 120, 179.5} {
		if err := testSpec(angle).Validate(0); err != nil {
			t.Errorf("angle %v: unexpected error: %v", angle, err)
		}
	}
}

func TestValidateRejectsOversizedSilhouette(t *testing.T) {
	spec := ContactAngleSpec{AngleDeg: 90, Radius: 600, Width: 800, Height: 900}
	err := spec.Validate(0)
	if err == nil {
		t.Fatal("expected error for silhouette wider than canvas")
	}
	if !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("expected CONFIGURATION, got %v", err)
	}

	// The same radius with perturbation headroom must also be rejected.
	spec = ContactAngleSpec{AngleDeg: 90, Radius: 390, Width: 800, Height: 900}
	if err := spec.Validate(0); err != nil {
		t.Fatalf("unperturbed spec should fit: %v", err)
	}
	if err := spec.Validate(0.1); err == nil {
		t.Error("expected error once perturbation headroom is added")
	}
}

func TestValidateBoundsPerturbedCircleAtShallowAngles(t *testing.T) {
	// At shallow angles the visible cap is a thin sliver of a much larger
	// circle, and the harmonics modulate the full circle radius. Headroom
	// taken on the cap dimensions alone would accept this spec even though
	// the perturbed silhouette can reach past the canvas top.
	spec := ContactAngleSpec{AngleDeg: 2, Radius: 2000, Width: 800, Height: 10}
	if err := spec.Validate(0); err != nil {
		t.Fatalf("unperturbed sliver should fit: %v", err)
	}
	err := spec.Validate(0.08)
	if err == nil {
		t.Fatal("expected error once perturbation headroom is added")
	}
	if !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("expected CONFIGURATION, got %v", err)
	}
}

func TestValidatedSpecNeverClipsPerturbedMask(t *testing.T) {
	// Any spec Validate accepts with a given headroom must rasterize
	// within the canvas for every perturbation drawn under that bound.
	for _, angle := range []float64{5, 20, 45, 90, 150} {
		spec := testSpec(angle)
		if err := spec.Validate(MaxAmplitude); err != nil {
			t.Fatalf("angle %v: %v", angle, err)
		}
		for seed := uint64(1); seed <= 10; seed++ {
			b := NewBoundary(spec).Perturb(PerturbationProfile{
				Seed:      seed,
				Harmonics: 4,
				Amplitude: MaxAmplitude,
			})
			mask := RasterizeMask(b, spec.Width, spec.Height)
			minX, minY, maxX, maxY, ok := mask.Bounds()
			if !ok {
				t.Fatalf("angle %v seed %d: empty mask", angle, seed)
			}
			if minX <= 0 || minY <= 0 || maxX >= spec.Width-1 {
				t.Errorf("angle %v seed %d: perturbed mask (%d,%d)-(%d,%d) touches the canvas border",
					angle, seed, minX, minY, maxX, maxY)
			}
			if float64(maxY) > spec.baseline() {
				t.Errorf("angle %v seed %d: mask extends below baseline", angle, seed)
			}
		}
	}
}

func TestValidateRejectsBadRadius(t *testing.T) {
	for _, r := range []float64{0, -5} {
		spec := ContactAngleSpec{AngleDeg: 60, Radius: r, Width: 800, Height: 900}
		if err := spec.Validate(0); !errors.Is(err, errors.ErrCodeInvalidParameter) {
			t.Errorf("radius %v: expected INVALID_PARAMETER, got %v", r, err)
		}
	}
}

func TestCapGeometryTrend(t *testing.T) {
	// At 90 degrees the cap is a hemisphere: height equals the footprint
	// half-width, so the silhouette reads as circular.
	s90 := testSpec(90)
	if diff := math.Abs(s90.CapHeight() - s90.FootprintHalfWidth()); diff > 1e-9 {
		t.Errorf("at 90 degrees height and half-width should match, diff %v", diff)
	}

	// Low angles spread: the footprint dominates the height.
	s45 := testSpec(45)
	if s45.FootprintHalfWidth() <= s45.CapHeight() {
		t.Errorf("at 45 degrees half-width %v should exceed height %v",
			s45.FootprintHalfWidth(), s45.CapHeight())
	}

	// High angles bulge toward a full circular cap: the silhouette grows
	// past the footprint and taller than the half-width.
	s120 := testSpec(120)
	if s120.CapHeight() <= s120.FootprintHalfWidth() {
		t.Errorf("at 120 degrees height %v should exceed half-width %v",
			s120.CapHeight(), s120.FootprintHalfWidth())
	}
}

func TestMaskShapeTrend(t *testing.T) {
	width := func(angle float64) (int, int) {
		spec := testSpec(angle)
		mask := RasterizeMask(NewBoundary(spec), spec.Width, spec.Height)
		minX, minY, maxX, maxY, ok := mask.Bounds()
		if !ok {
			t.Fatalf("angle %v: empty mask", angle)
		}
		return maxX - minX + 1, maxY - minY + 1
	}

	w45, h45 := width(45)
	if w45 <= h45 {
		t.Errorf("at 45 degrees mask should be wider (%d) than tall (%d)", w45, h45)
	}

	w120, _ := width(120)
	spec := testSpec(120)
	if float64(w120) <= 2*spec.FootprintHalfWidth() {
		t.Errorf("at 120 degrees the bulge width %d should exceed the footprint %v",
			w120, 2*spec.FootprintHalfWidth())
	}
}

func TestMaskWithinCanvas(t *testing.T) {
	for _, angle := range []float64{10, 45, 90, 120, 170} {
		spec := testSpec(angle)
		if err := spec.Validate(0); err != nil {
			t.Fatalf("angle %v: %v", angle, err)
		}
		mask := RasterizeMask(NewBoundary(spec), spec.Width, spec.Height)
		minX, minY, maxX, maxY, ok := mask.Bounds()
		if !ok {
			t.Fatalf("angle %v: empty mask", angle)
		}
		if minX < 0 || minY < 0 || maxX >= spec.Width || maxY >= spec.Height {
			t.Errorf("angle %v: mask bounds (%d,%d)-(%d,%d) escape canvas", angle, minX, minY, maxX, maxY)
		}
		if float64(maxY) > spec.baseline() {
			t.Errorf("angle %v: mask extends below baseline", angle)
		}
	}
}

func TestMaskHasSoftEdge(t *testing.T) {
	spec := testSpec(90)
	mask := RasterizeMask(NewBoundary(spec), spec.Width, spec.Height)

	fractional := 0
	for _, v := range mask.Pix {
		if v > 0 && v < 1 {
			fractional++
		}
	}
	if fractional == 0 {
		t.Error("expected fractional coverage along the silhouette edge")
	}
}
