package tesseract

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"
)

func TestNormalizeToRGBFlattensAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0}) // fully transparent

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}

	normalized, err := normalizeToRGB(buf.Bytes())
	if err != nil {
		t.Fatalf("normalizeToRGB() error = %v", err)
	}

	out, err := png.Decode(bytes.NewReader(normalized))
	if err != nil {
		t.Fatalf("decode normalized image: %v", err)
	}

	r, g, b, a := out.At(0, 0).RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xffff {
		t.Fatalf("opaque pixel changed: %v %v %v %v", r, g, b, a)
	}
	// The transparent pixel must flatten onto the white background.
	r, g, b, a = out.At(1, 0).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Fatalf("transparent pixel not flattened to white: %v %v %v %v", r, g, b, a)
	}
}

func TestNormalizeToRGBHandlesPaletted(t *testing.T) {
	src := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
	})
	src.SetColorIndex(2, 2, 1)

	var buf bytes.Buffer
	if err := gif.Encode(&buf, src, nil); err != nil {
		t.Fatalf("gif.Encode() error = %v", err)
	}

	normalized, err := normalizeToRGB(buf.Bytes())
	if err != nil {
		t.Fatalf("normalizeToRGB() error = %v", err)
	}

	out, err := png.Decode(bytes.NewReader(normalized))
	if err != nil {
		t.Fatalf("decode normalized image: %v", err)
	}
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v", out.Bounds())
	}
	if _, g, _, _ := out.At(2, 2).RGBA(); g != 0xffff {
		t.Fatalf("palette color lost at (2,2)")
	}
}

func TestNormalizeToRGBRejectsGarbage(t *testing.T) {
	if _, err := normalizeToRGB([]byte("definitely not an image")); err == nil {
		t.Fatalf("expected decode error")
	}
}
