package droplet

import "math"

// Harmonic is one sinusoidal term of the perimeter modulation.
type Harmonic struct {
	Freq  int     // angular frequency k
	Amp   float64 // relative amplitude a_k
	Phase float64 // phase shift in radians
}

// Boundary is the droplet silhouette expressed as a continuous radius
// function of polar angle around the cap center, together with the
// baseline the visible cap is clipped at. A Boundary is immutable once
// produced; Perturb returns a new Boundary rather than modifying the
// receiver.
type Boundary struct {
	// CX, CY is the spherical-cap center in canvas coordinates. For
	// contact angles under 90 degrees the center lies below the baseline.
	CX, CY float64

	// Base is the unperturbed cap radius.
	Base float64

	// Baseline is the y coordinate of the contact surface; the silhouette
	// is the part of the cap with y <= Baseline.
	Baseline float64

	harmonics []Harmonic
}

// NewBoundary derives the base silhouette from a contact-angle spec.
// The cap center sits at cy = baseline + r*cos θ, so the visible segment
// above the baseline has height r*(1 - cos θ) and footprint 2*r*sin θ.
// The spec must already be validated.
func NewBoundary(spec ContactAngleSpec) Boundary {
	theta := spec.AngleDeg * math.Pi / 180
	return Boundary{
		CX:       float64(spec.Width) / 2,
		CY:       spec.baseline() + spec.Radius*math.Cos(theta),
		Base:     spec.Radius,
		Baseline: spec.baseline(),
	}
}

// Radius evaluates the (possibly perturbed) boundary radius at polar
// angle phi. Without harmonics this is the constant cap radius.
func (b Boundary) Radius(phi float64) float64 {
	r := b.Base
	if len(b.harmonics) == 0 {
		return r
	}
	mod := 1.0
	for _, h := range b.harmonics {
		mod += h.Amp * math.Sin(float64(h.Freq)*phi+h.Phase)
	}
	return r * mod
}

// Harmonics returns a copy of the modulation terms.
func (b Boundary) Harmonics() []Harmonic {
	out := make([]Harmonic, len(b.harmonics))
	copy(out, b.harmonics)
	return out
}

// AmplitudeSum returns the total relative modulation Σ|a_k|. The boundary
// radius stays within Base*(1 ± AmplitudeSum) for every phi.
func (b Boundary) AmplitudeSum() float64 {
	var sum float64
	for _, h := range b.harmonics {
		sum += math.Abs(h.Amp)
	}
	return sum
}
