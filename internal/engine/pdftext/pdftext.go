package pdftext

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// Reader extracts the embedded text of each PDF page. Scanned PDFs yield
// empty pages here; the orchestrator falls back to rasterization for those.
type Reader struct{}

func New() *Reader {
	return &Reader{}
}

func (r *Reader) ReadPages(_ context.Context, pdfPath string) ([]string, error) {
	f, doc, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	pages := make([]string, 0, doc.NumPage())
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}
