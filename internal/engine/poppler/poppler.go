package poppler

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/google/uuid"
)

// Rasterizer converts PDF pages to PNG bitmaps with poppler's pdftoppm.
type Rasterizer struct {
	bin    string
	tmpDir string
}

func New(bin, tmpDir string) *Rasterizer {
	return &Rasterizer{bin: bin, tmpDir: tmpDir}
}

// Rasterize renders every page of the PDF at the given DPI and returns the
// page image paths in page order. The caller owns the returned files.
func (r *Rasterizer) Rasterize(ctx context.Context, pdfPath string, dpi int) ([]string, error) {
	prefix := filepath.Join(r.tmpDir, "page-"+uuid.NewString())

	cmd := exec.CommandContext(ctx, r.bin, "-png", "-r", strconv.Itoa(dpi), pdfPath, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w: %s", err, out)
	}

	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to collect rasterized pages: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages for %s", pdfPath)
	}

	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(pages)
	return pages, nil
}
