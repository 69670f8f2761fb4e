package droplet

import "math"

// edgeWidth is the transition band of the soft silhouette edge in pixels.
// Boundary pixels receive fractional coverage across this band instead of
// a hard on/off step, so later shading shows no seam at the perimeter.
const edgeWidth = 2.0

// RasterizeMask converts a boundary into a coverage mask over a w x h
// canvas. Each pixel holds the fraction of the pixel inside the silhouette
// in [0, 1]: 1 deep inside, 0 outside, fractional within edgeWidth of the
// perimeter. Pixels below the baseline are clipped to 0.
func RasterizeMask(b Boundary, w, h int) *PixelBuffer {
	mask := NewPixelBuffer(w, h)

	// Only pixels within the perturbed reach of the cap can be covered.
	reach := b.Base*(1+b.AmplitudeSum()) + edgeWidth
	x0 := int(math.Max(0, math.Floor(b.CX-reach)))
	x1 := int(math.Min(float64(w-1), math.Ceil(b.CX+reach)))
	y0 := int(math.Max(0, math.Floor(b.CY-reach)))
	y1 := int(math.Min(math.Min(float64(h-1), b.Baseline), math.Ceil(b.CY+reach)))

	for y := y0; y <= y1; y++ {
		dy := float64(y) - b.CY
		for x := x0; x <= x1; x++ {
			dx := float64(x) - b.CX
			dist := math.Hypot(dx, dy)
			r := b.Radius(math.Atan2(dy, dx))
			cov := (r-dist)/edgeWidth + 0.5
			if cov <= 0 {
				continue
			}
			mask.Set(x, y, math.Min(1, cov))
		}
	}
	return mask
}

// Bounds returns the bounding box of non-zero mask coverage as
// (minX, minY, maxX, maxY) inclusive, and false if the mask is empty.
func (b *PixelBuffer) Bounds() (int, int, int, int, bool) {
	minX, minY := b.W, b.H
	maxX, maxY := -1, -1
	for y := 0; y < b.H; y++ {
		row := y * b.W
		for x := 0; x < b.W; x++ {
			if b.Pix[row+x] > 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				maxY = y
			}
		}
	}
	return minX, minY, maxX, maxY, maxX >= 0
}
