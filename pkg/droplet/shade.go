package droplet

import "math"

// Shade computes the shaded droplet raster from a coverage mask and a
// lighting spec. The returned buffer holds the droplet luminance at every
// pixel with non-zero coverage; the caller blends it over the background
// using the mask.
//
// Brightness follows the distance d from a highlight point offset from the
// cap center along the light direction:
//
//	I(d) = Ambient + Intensity*(1-Ambient)*exp(-(d/(Falloff*r))^Exponent)
//
// clamped to [0, 1], and luminance interpolates BaseLum..HighlightLum by I.
// The field is continuous across the mask edge because coverage, not the
// shading, carries the boundary transition.
func Shade(mask *PixelBuffer, b Boundary, light LightingSpec) *PixelBuffer {
	hx := b.CX + math.Cos(light.Direction)*light.Offset*b.Base
	hy := b.CY - math.Sin(light.Direction)*light.Offset*b.Base
	sigma := light.Falloff * b.Base

	out := NewPixelBuffer(mask.W, mask.H)
	for y := 0; y < mask.H; y++ {
		row := y * mask.W
		for x := 0; x < mask.W; x++ {
			if mask.Pix[row+x] == 0 {
				continue
			}
			d := math.Hypot(float64(x)-hx, float64(y)-hy)
			intensity := light.Ambient + light.Intensity*(1-light.Ambient)*math.Exp(-math.Pow(d/sigma, light.Exponent))
			if intensity > 1 {
				intensity = 1
			}
			out.Pix[row+x] = clampChannel(light.BaseLum + (light.HighlightLum-light.BaseLum)*intensity)
		}
	}
	return out
}
