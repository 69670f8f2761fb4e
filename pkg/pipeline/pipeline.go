// Package pipeline provides the shared generation pipeline for dropletgen.
//
// This package wraps the core droplet renderer with option validation,
// defaulting, PNG encoding, and artifact caching, so the CLI, the batch
// driver, and the HTTP front end all produce identical output for
// identical parameters.
//
// # Usage
//
// Create a Runner and generate an image:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{ID: 1, Angle: 60}
//	result, err := runner.Generate(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile(result.Filename(), result.PNG, 0644)
package pipeline

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/sessilelab/dropletgen/pkg/droplet"
	"github.com/sessilelab/dropletgen/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, Batch, and Server
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 900

	// DefaultRadius is the default spherical-cap radius in pixels.
	DefaultRadius = 240.0

	// DefaultSeedBase is added to the row id to derive the per-image seed
	// when the caller does not supply one, so batches stay reproducible
	// while every row still gets a distinct perimeter and noise pattern.
	DefaultSeedBase = uint64(42)

	// DefaultHarmonics is the default perimeter harmonic count.
	DefaultHarmonics = 4

	// DefaultAmplitude is the default relative perimeter modulation bound.
	DefaultAmplitude = 0.08
)

// Options contains all configuration for one droplet generation.
// This struct supports JSON serialization for front-end requests.
type Options struct {
	// ID tags the output (droplet_{id}.png) and, with a zero Seed,
	// derives the per-image seed.
	ID int `json:"id"`

	// Angle is the contact angle in degrees, open interval (0, 180).
	Angle float64 `json:"angle"`

	// Seed overrides the derived seed when non-zero.
	Seed uint64 `json:"seed,omitempty"`

	// Geometry options
	Width        int     `json:"width,omitempty"`
	Height       int     `json:"height,omitempty"`
	Radius       float64 `json:"radius,omitempty"`
	BaselineFrac float64 `json:"baseline_frac,omitempty"`

	// Perturbation options
	Harmonics int     `json:"harmonics,omitempty"`
	Amplitude float64 `json:"amplitude,omitempty"`

	// Lighting; the zero value means droplet.DefaultLighting().
	Lighting droplet.LightingSpec `json:"lighting,omitempty"`

	// Post-processing; zero Sigma/NoiseStdDev mean the dataset defaults.
	// Set Clean to disable blur and noise entirely (exact label masks).
	Sigma       float64 `json:"sigma,omitempty"`
	NoiseStdDev float64 `json:"noise_stddev,omitempty"`
	Clean       bool    `json:"clean,omitempty"`

	// Annotate adds a caption strip with the contact angle.
	Annotate bool `json:"annotate,omitempty"`

	// Refresh bypasses the artifact cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if err := errors.ValidateAngle(o.Angle); err != nil {
		return err
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.BaselineFrac == 0 {
		o.BaselineFrac = droplet.DefaultBaselineFrac
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeedBase + uint64(o.ID)
	}
	if o.Harmonics == 0 {
		o.Harmonics = DefaultHarmonics
	}
	if o.Amplitude == 0 {
		o.Amplitude = DefaultAmplitude
	}
	if o.Lighting == (droplet.LightingSpec{}) {
		o.Lighting = droplet.DefaultLighting()
	}

	defaults := droplet.DefaultNoise(o.Seed)
	if o.Sigma == 0 {
		o.Sigma = defaults.Sigma
	}
	if o.NoiseStdDev == 0 {
		o.NoiseStdDev = defaults.StdDev
	}
	if o.Clean {
		o.Sigma = 0
		o.NoiseStdDev = 0
	}

	// Full parameter validation happens in droplet.Generate; checking the
	// spec here as well surfaces configuration problems before any work.
	if err := o.Spec().Validate(o.Profile().EffectiveAmplitude()); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// Spec builds the contact-angle spec from the options.
func (o *Options) Spec() droplet.ContactAngleSpec {
	return droplet.ContactAngleSpec{
		AngleDeg:     o.Angle,
		Radius:       o.Radius,
		Width:        o.Width,
		Height:       o.Height,
		BaselineFrac: o.BaselineFrac,
	}
}

// Profile builds the perturbation profile from the options.
func (o *Options) Profile() droplet.PerturbationProfile {
	return droplet.PerturbationProfile{
		Seed:      o.Seed,
		Harmonics: o.Harmonics,
		Amplitude: o.Amplitude,
	}
}

// Noise builds the noise profile from the options.
func (o *Options) Noise() droplet.NoiseProfile {
	return droplet.NoiseProfile{
		Sigma:  o.Sigma,
		StdDev: o.NoiseStdDev,
		Seed:   o.Seed,
	}
}

// ForRow returns a copy of the options bound to one batch row. The copy
// is unvalidated so defaults (including the derived seed) are recomputed
// for the new id and angle; a zero Seed in the receiver stays zero.
func (o Options) ForRow(id int, angle float64) Options {
	out := o
	out.ID = id
	out.Angle = angle
	out.validated = false
	return out
}

// Caption returns the annotation caption for this generation.
func (o *Options) Caption() string {
	return fmt.Sprintf("Droplet | Contact Angle = %.1f°", o.Angle)
}

// Filename returns the output file name for this generation.
func (o *Options) Filename() string {
	return fmt.Sprintf("droplet_%d.png", o.ID)
}
