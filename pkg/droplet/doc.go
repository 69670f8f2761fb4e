// Package droplet implements the core droplet rendering pipeline.
//
// The pipeline derives a droplet silhouette from contact-angle geometry,
// perturbs its perimeter with seeded harmonics, shades it with a simulated
// light source, composites it over a background, and applies camera-like
// blur and sensor noise.
//
// # Architecture
//
// The pipeline consists of five stages:
//
//  1. Shape: derive the base silhouette boundary from a ContactAngleSpec
//  2. Perturb: apply a bounded, seeded radial modulation to the boundary
//  3. Shade: compute a per-pixel brightness field over the silhouette mask
//  4. PostProcess: separable blur plus additive sensor noise
//  5. Composite: merge the stages into the final pixel buffer
//
// Each stage is a pure transform with a narrow input/output contract; no
// shared state survives between generations. All randomness comes from
// generator instances constructed per call from caller-supplied seeds, so
// identical inputs produce byte-identical output and independent
// generations can run concurrently without locks.
//
// # Usage
//
//	spec := droplet.ContactAngleSpec{AngleDeg: 60, Radius: 240, Width: 800, Height: 900}
//	buf, meta, err := droplet.Generate(spec,
//	    droplet.PerturbationProfile{Seed: 42, Harmonics: 4, Amplitude: 0.08},
//	    droplet.DefaultLighting(),
//	    droplet.DefaultNoise(42))
//	if err != nil {
//	    return err
//	}
//	img := buf.ToImage()
package droplet
