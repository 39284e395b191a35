package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/otiai10/gosseract/v2"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// Engine recognizes text in image files with Tesseract.
type Engine struct {
	lang string
}

func New(lang string) *Engine {
	return &Engine{lang: lang}
}

func (e *Engine) Recognize(_ context.Context, imagePath string) (string, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	normalized, err := normalizeToRGB(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.lang); err != nil {
		return "", fmt.Errorf("failed to set recognition language: %w", err)
	}
	if err := client.SetImageFromBytes(normalized); err != nil {
		return "", fmt.Errorf("failed to load image into tesseract: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract recognition failed: %w", err)
	}
	return text, nil
}

// normalizeToRGB decodes any supported format (png, jpeg, gif, bmp, tiff) and
// flattens paletted and alpha images onto a white background, re-encoded as
// PNG for the recognition engine.
func normalizeToRGB(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	xdraw.Draw(dst, bounds, image.White, image.Point{}, xdraw.Src)
	xdraw.Draw(dst, bounds, src, bounds.Min, xdraw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
