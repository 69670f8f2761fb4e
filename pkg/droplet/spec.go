package droplet

import (
	"math"

	"github.com/sessilelab/dropletgen/pkg/errors"
)

// Channel value range for the luminance plane.
const (
	ChannelMin = 0.0
	ChannelMax = 255.0
)

// DefaultBackground is the background luminance the droplet is composited
// onto, matching a typical back-lit goniometer frame.
const DefaultBackground = 240.0

// ContactAngleSpec describes the droplet geometry to synthesize.
//
// The droplet cross-section is modeled as a spherical-cap projection: a
// circle of radius Radius whose center sits below the contact surface for
// angles under 90 degrees and above it for angles over 90 degrees, clipped
// at the baseline. This yields a flat, spread shape as AngleDeg approaches
// 0 and a near-full circular bump as it approaches 180.
type ContactAngleSpec struct {
	// AngleDeg is the contact angle in degrees, open interval (0, 180).
	AngleDeg float64

	// Radius is the spherical-cap radius in pixels.
	Radius float64

	// Width and Height are the canvas dimensions in pixels.
	Width, Height int

	// BaselineFrac places the contact surface at Height*BaselineFrac.
	// Zero means the default of 0.75.
	BaselineFrac float64
}

// DefaultBaselineFrac is the vertical position of the contact surface as a
// fraction of canvas height.
const DefaultBaselineFrac = 0.75

// baseline returns the y coordinate of the contact surface.
func (s ContactAngleSpec) baseline() float64 {
	frac := s.BaselineFrac
	if frac == 0 {
		frac = DefaultBaselineFrac
	}
	return float64(s.Height) * frac
}

// CapHeight returns the height of the visible spherical cap above the
// contact surface: r * (1 - cos θ).
func (s ContactAngleSpec) CapHeight() float64 {
	return s.Radius * (1 - math.Cos(s.AngleDeg*math.Pi/180))
}

// FootprintHalfWidth returns half the width of the droplet footprint on
// the contact surface: r * sin θ.
func (s ContactAngleSpec) FootprintHalfWidth() float64 {
	return s.Radius * math.Abs(math.Sin(s.AngleDeg*math.Pi/180))
}

// Validate checks the spec parameters and verifies that the silhouette
// bounding box fits within the canvas. Oversized silhouettes are rejected,
// never clipped, so dataset geometry stays predictable. The margin
// argument is the relative perimeter headroom (the perturbation amplitude
// bound) the silhouette must additionally fit with.
func (s ContactAngleSpec) Validate(margin float64) error {
	if err := errors.ValidateAngle(s.AngleDeg); err != nil {
		return err
	}
	if err := errors.ValidateRadius(s.Radius); err != nil {
		return err
	}
	if err := errors.ValidateCanvas(s.Width, s.Height); err != nil {
		return err
	}
	if s.BaselineFrac != 0 {
		if err := errors.ValidateBaselineFrac(s.BaselineFrac); err != nil {
			return err
		}
	}

	// The harmonics modulate the full cap radius, so the headroom must be
	// taken on the circle itself: the perturbed boundary stays within
	// radius Radius*(1+margin) of the cap center (the same reach bound
	// RasterizeMask uses). Scaling only the visible cap dimensions would
	// underestimate the perturbed extent at shallow angles.
	rp := s.Radius * (1 + margin)
	depth := s.Radius * math.Cos(s.AngleDeg*math.Pi/180) // cap center below the baseline
	height := rp - depth

	halfWidth := rp
	if depth > 0 {
		halfWidth = 0
		if rp > depth {
			halfWidth = math.Sqrt(rp*rp - depth*depth)
		}
	}

	cx := float64(s.Width) / 2
	if s.baseline()-height < 0 {
		return errors.New(errors.ErrCodeConfiguration,
			"silhouette height %.0fpx exceeds canvas above baseline (angle %.1f, radius %.0f)",
			height, s.AngleDeg, s.Radius)
	}
	if cx-halfWidth < 0 || cx+halfWidth > float64(s.Width) {
		return errors.New(errors.ErrCodeConfiguration,
			"silhouette width %.0fpx exceeds canvas width %d (angle %.1f, radius %.0f)",
			2*halfWidth, s.Width, s.AngleDeg, s.Radius)
	}
	return nil
}

// LightingSpec controls the simulated light source over the silhouette.
//
// Brightness at a pixel decays with distance from a highlight point offset
// from the droplet center along the light direction:
//
//	I(d) = Ambient + Intensity*(1-Ambient) * exp(-(d/(Falloff*r))^Exponent)
//
// and the pixel luminance interpolates between BaseLum and HighlightLum by
// I, clamped to the channel range. The falloff shape is deliberately
// exposed as tunable parameters rather than fixed constants.
type LightingSpec struct {
	// Direction is the light direction in radians; 0 points right,
	// pi/2 points up (toward the droplet apex).
	Direction float64

	// Offset places the highlight point this fraction of the radius from
	// the droplet center along Direction.
	Offset float64

	// Intensity scales the highlight contribution, typically in (0, 1].
	Intensity float64

	// Falloff is the decay length scale as a fraction of the radius.
	Falloff float64

	// Exponent shapes the decay curve; 2 gives a Gaussian-like highlight.
	Exponent float64

	// Ambient is the brightness floor inside the silhouette, in [0, 1).
	Ambient float64

	// BaseLum and HighlightLum are the droplet luminances at intensity
	// 0 and 1 respectively.
	BaseLum, HighlightLum float64
}

// DefaultLighting returns a lighting spec with a soft top-lit highlight.
func DefaultLighting() LightingSpec {
	return LightingSpec{
		Direction:    math.Pi / 2,
		Offset:       0.45,
		Intensity:    1.0,
		Falloff:      0.9,
		Exponent:     2.0,
		Ambient:      0.08,
		BaseLum:      18,
		HighlightLum: 135,
	}
}

// Validate checks the lighting parameters.
func (l LightingSpec) Validate() error {
	if l.Ambient < 0 || l.Ambient >= 1 {
		return errors.New(errors.ErrCodeInvalidParameter, "ambient floor %.2f outside [0, 1)", l.Ambient)
	}
	if l.Exponent <= 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "falloff exponent must be positive, got %.2f", l.Exponent)
	}
	if l.Falloff <= 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "falloff scale must be positive, got %.2f", l.Falloff)
	}
	return nil
}

// NoiseProfile controls the camera-like post-processing pass.
type NoiseProfile struct {
	// Sigma is the Gaussian blur standard deviation in pixels.
	// Zero disables blurring; negative values are invalid.
	Sigma float64

	// StdDev is the standard deviation of the additive Gaussian sensor
	// noise in channel units. Zero disables noise.
	StdDev float64

	// Seed makes the noise reproducible. Zero means fresh randomness on
	// every call.
	Seed uint64
}

// DefaultNoise returns the noise profile used by the reference dataset:
// light sensor grain and a slight defocus blur.
func DefaultNoise(seed uint64) NoiseProfile {
	return NoiseProfile{Sigma: 0.8, StdDev: 6, Seed: seed}
}

// Validate checks the noise parameters.
func (n NoiseProfile) Validate() error {
	if err := errors.ValidateSigma(n.Sigma); err != nil {
		return err
	}
	if n.StdDev < 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "noise standard deviation must be non-negative, got %.2f", n.StdDev)
	}
	return nil
}

// Metadata describes a finished generation, returned alongside the buffer
// for the caller to persist or display.
type Metadata struct {
	AngleDeg float64 `json:"angle"`
	Seed     uint64  `json:"seed"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
}
