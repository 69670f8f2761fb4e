// Package render turns finished pixel buffers into output artifacts:
// PNG encoding, optional caption annotation, gallery thumbnails, and
// zip bundles of batch results.
package render

import (
	"bytes"
	"image"
	"image/png"
)

// EncodePNG encodes an image as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodePNG decodes PNG bytes back into an image.
func DecodePNG(data []byte) (image.Image, error) {
	return png.Decode(bytes.NewReader(data))
}
