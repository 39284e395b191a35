package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"text-extractor/internal/domain"

	"github.com/wb-go/wbf/zlog"
)

// Usecase selects and runs an extraction strategy for a staged file. Images
// go straight to the recognizer; PDFs prefer embedded text and fall back to
// per-page rasterization plus recognition only when the embedded text is too
// sparse.
type Usecase struct {
	recognizer recognizer
	pdfReader  pdfReader
	rasterizer rasterizer
	logger     *zlog.Zerolog
}

func NewUsecase(recognizer recognizer, pdfReader pdfReader, rasterizer rasterizer, logger *zlog.Zerolog) *Usecase {
	return &Usecase{
		recognizer: recognizer,
		pdfReader:  pdfReader,
		rasterizer: rasterizer,
		logger:     logger,
	}
}

func (u *Usecase) Extract(ctx context.Context, path string) (*domain.ExtractionResult, error) {
	fileType, ok := domain.DetectFileType(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, filepath.Ext(path))
	}

	var (
		text string
		err  error
	)

	switch fileType {
	case domain.FileTypeImage:
		text, err = u.extractFromImage(ctx, path)
	case domain.FileTypePDF:
		text, err = u.extractFromPDF(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	return &domain.ExtractionResult{
		Text:     text,
		FileType: fileType,
	}, nil
}

func (u *Usecase) extractFromImage(ctx context.Context, path string) (string, error) {
	text, err := u.recognizer.Recognize(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from image: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (u *Usecase) extractFromPDF(ctx context.Context, path string) (string, error) {
	pages, err := u.pdfReader.ReadPages(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from pdf: %w", err)
	}

	var b strings.Builder
	for _, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		b.WriteString(page)
		b.WriteString("\n")
	}

	embedded := strings.TrimSpace(b.String())
	if utf8.RuneCountInString(embedded) > domain.EmbeddedTextThreshold {
		return embedded, nil
	}

	u.logger.Info().
		Str("path", path).
		Int("embedded_chars", utf8.RuneCountInString(embedded)).
		Msg("Embedded text too sparse, falling back to page recognition")

	return u.extractFromScannedPDF(ctx, path)
}

func (u *Usecase) extractFromScannedPDF(ctx context.Context, path string) (string, error) {
	pagePaths, err := u.rasterizer.Rasterize(ctx, path, domain.RasterDPI)
	if err != nil {
		return "", fmt.Errorf("failed to rasterize pdf: %w", err)
	}
	// Sweep whatever the loop below did not get to remove.
	defer func() {
		for _, p := range pagePaths {
			os.Remove(p)
		}
	}()

	var b strings.Builder
	for i, pagePath := range pagePaths {
		pageText, err := u.recognizer.Recognize(ctx, pagePath)
		os.Remove(pagePath)
		if err != nil {
			return "", fmt.Errorf("failed to recognize pdf page %d: %w", i+1, err)
		}
		fmt.Fprintf(&b, "--- Page %d ---\n%s\n\n", i+1, strings.TrimSpace(pageText))
	}

	return strings.TrimSpace(b.String()), nil
}
