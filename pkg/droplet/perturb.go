package droplet

import (
	"math"
	"math/rand/v2"

	"github.com/sessilelab/dropletgen/pkg/errors"
)

// Perturbation tuning bounds. Amplitudes are rescaled, not rejected, when
// the drawn sum exceeds the configured bound; the clamp keeps the minimum
// instantaneous radius positive so the deformed boundary remains a simple
// closed curve.
const (
	// MaxAmplitude is the hard ceiling for the total relative modulation.
	MaxAmplitude = 0.5

	// minHarmonicFreq and maxHarmonicFreq bound the drawn frequencies.
	// Low frequencies read as lopsided droplets, high ones as jagged
	// edges; 3..14 matches the look of real contact-line pinning.
	minHarmonicFreq = 3
	maxHarmonicFreq = 14
)

// PerturbationProfile controls the seeded radial modulation applied to a
// silhouette boundary.
type PerturbationProfile struct {
	// Seed initializes the per-call generator. The same seed, boundary,
	// harmonic count, and amplitude bound always produce the same
	// deformed boundary.
	Seed uint64

	// Harmonics is the number of sinusoidal terms to sum.
	Harmonics int

	// Amplitude bounds the total relative modulation Σ|a_k|. Values above
	// MaxAmplitude are clamped (documented here, not hidden).
	Amplitude float64
}

// Validate checks the perturbation parameters.
func (p PerturbationProfile) Validate() error {
	if p.Harmonics < 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "harmonic count must be non-negative, got %d", p.Harmonics)
	}
	if p.Amplitude < 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "perturbation amplitude must be non-negative, got %.3f", p.Amplitude)
	}
	return nil
}

// EffectiveAmplitude returns the amplitude bound after the documented
// clamp to MaxAmplitude.
func (p PerturbationProfile) EffectiveAmplitude() float64 {
	return math.Min(p.Amplitude, MaxAmplitude)
}

// Perturb returns a new boundary with the radius modulated as
//
//	r'(phi) = r(phi) * (1 + Σ_k a_k*sin(k*phi + δ_k))
//
// where per-harmonic amplitudes and phases are drawn from a generator
// scoped to this call, never a shared one, so perturbation is reproducible
// and safe under parallel batch execution. If the drawn amplitudes sum
// past the profile bound they are rescaled to meet it exactly, which keeps
// r' positive everywhere and the loop free of self-intersections.
func (b Boundary) Perturb(p PerturbationProfile) Boundary {
	bound := p.EffectiveAmplitude()
	if p.Harmonics == 0 || bound == 0 {
		out := b
		out.harmonics = nil
		return out
	}

	rng := rand.New(rand.NewPCG(p.Seed, uint64(p.Harmonics)))

	harmonics := make([]Harmonic, p.Harmonics)
	var sum float64
	for i := range harmonics {
		amp := rng.Float64() * bound
		harmonics[i] = Harmonic{
			Freq:  minHarmonicFreq + rng.IntN(maxHarmonicFreq-minHarmonicFreq+1),
			Amp:   amp,
			Phase: rng.Float64() * 2 * math.Pi,
		}
		sum += amp
	}
	if sum > bound {
		scale := bound / sum
		for i := range harmonics {
			harmonics[i].Amp *= scale
		}
	}

	out := b
	out.harmonics = harmonics
	return out
}
