package droplet

import "math"

// contactLineLum is the luminance of the contact-surface line.
const contactLineLum = 0.0

// Generate runs the full pipeline for one droplet: shape derivation,
// perimeter perturbation, shading, compositing over the background, and
// blur/noise post-processing. It is a pure function of its inputs aside
// from the generator state explicitly seeded through the profiles, so it
// is reentrant and safe to call from concurrent batch workers.
//
// The returned buffer is freshly allocated and owned by the caller. A
// typed error is returned for invalid parameters (InvalidParameter) or a
// silhouette that cannot fit the canvas (Configuration); nothing is
// partially produced on failure.
func Generate(spec ContactAngleSpec, perturb PerturbationProfile, light LightingSpec, noise NoiseProfile) (*PixelBuffer, Metadata, error) {
	if err := perturb.Validate(); err != nil {
		return nil, Metadata{}, err
	}
	if err := spec.Validate(perturb.EffectiveAmplitude()); err != nil {
		return nil, Metadata{}, err
	}
	if err := light.Validate(); err != nil {
		return nil, Metadata{}, err
	}
	if err := noise.Validate(); err != nil {
		return nil, Metadata{}, err
	}

	boundary := NewBoundary(spec).Perturb(perturb)
	mask := RasterizeMask(boundary, spec.Width, spec.Height)
	shaded := Shade(mask, boundary, light)

	// Composite the shaded droplet over the background.
	buf := NewPixelBuffer(spec.Width, spec.Height)
	for i, cov := range mask.Pix {
		buf.Pix[i] = DefaultBackground*(1-cov) + shaded.Pix[i]*cov
	}
	drawContactLine(buf, boundary.Baseline)

	buf.Blur(noise.Sigma)
	buf.AddNoise(noise)

	meta := Metadata{
		AngleDeg: spec.AngleDeg,
		Seed:     perturb.Seed,
		Width:    spec.Width,
		Height:   spec.Height,
	}
	return buf, meta, nil
}

// drawContactLine paints the thin dark line of the contact surface the
// droplet sits on, spanning the canvas width just around the baseline row.
func drawContactLine(buf *PixelBuffer, baseline float64) {
	base := int(math.Round(baseline))
	for y := base - 2; y <= base+1; y++ {
		if y < 0 || y >= buf.H {
			continue
		}
		row := y * buf.W
		for x := 0; x < buf.W; x++ {
			buf.Pix[row+x] = contactLineLum
		}
	}
}
