package extract

import "context"

type recognizer interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

type pdfReader interface {
	ReadPages(ctx context.Context, pdfPath string) ([]string, error)
}

type rasterizer interface {
	Rasterize(ctx context.Context, pdfPath string, dpi int) ([]string, error)
}
