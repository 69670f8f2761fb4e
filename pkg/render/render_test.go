package render

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"testing"
)

func testImage(w, h int) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i % 256)
	}
	return img
}

func TestEncodeDecodePNG(t *testing.T) {
	src := testImage(32, 24)

	data, err := EncodePNG(src)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty PNG output")
	}

	img, err := DecodePNG(data)
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}
	if img.Bounds() != src.Bounds() {
		t.Errorf("bounds changed: %v vs %v", img.Bounds(), src.Bounds())
	}
}

func TestAnnotateAddsCaptionBand(t *testing.T) {
	src := testImage(100, 80)
	out := Annotate(src, "Droplet | Contact Angle = 60.0°")

	if out.Bounds().Dx() != 100 {
		t.Errorf("width changed: %d", out.Bounds().Dx())
	}
	if out.Bounds().Dy() != 80+captionBand {
		t.Errorf("expected height %d, got %d", 80+captionBand, out.Bounds().Dy())
	}

	// The caption band must contain dark (text) pixels on white.
	dark := 0
	for y := 0; y < captionBand; y++ {
		for x := 0; x < 100; x++ {
			if c := color.GrayModel.Convert(out.At(x, y)).(color.Gray); c.Y < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("expected caption text pixels in the band")
	}
}

func TestThumbnail(t *testing.T) {
	src := testImage(800, 900)
	thumb := Thumbnail(src, 200)

	if thumb.Bounds().Dx() != 200 {
		t.Errorf("expected width 200, got %d", thumb.Bounds().Dx())
	}
	if thumb.Bounds().Dy() != 225 {
		t.Errorf("expected height 225, got %d", thumb.Bounds().Dy())
	}

	// Small images pass through untouched.
	small := testImage(100, 50)
	if got := Thumbnail(small, 200); got != small {
		t.Error("small image should be returned unchanged")
	}
}

func TestBundle(t *testing.T) {
	files := map[string][]byte{
		"droplet_2.png": []byte("two"),
		"droplet_1.png": []byte("one"),
	}

	data, err := Bundle(files)
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(zr.File))
	}
	// Sorted order for determinism.
	if zr.File[0].Name != "droplet_1.png" || zr.File[1].Name != "droplet_2.png" {
		t.Errorf("unexpected entry order: %s, %s", zr.File[0].Name, zr.File[1].Name)
	}

	rc, err := zr.File[0].Open()
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer rc.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if buf.String() != "one" {
		t.Errorf("unexpected entry content: %q", buf.String())
	}
}
