package render

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// captionBand is the height in pixels of the caption strip added above
// the image.
const captionBand = 28

// Annotate returns a copy of img with a caption strip above it, e.g.
// "Droplet | Contact Angle = 60.0°". The base image dimensions are
// preserved; only the caption band is added on top.
func Annotate(img image.Image, caption string) image.Image {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	dc := gg.NewContext(w, h+captionBand)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.DrawImage(img, 0, captionBand)

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(caption, float64(w)/2, float64(captionBand)/2, 0.5, 0.35)

	return dc.Image()
}
