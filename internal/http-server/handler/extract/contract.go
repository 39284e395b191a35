package extract

import (
	"context"
	"io"

	"text-extractor/internal/domain"
)

type extractUsecase interface {
	Extract(ctx context.Context, path string) (*domain.ExtractionResult, error)
}

type fileStager interface {
	Stage(filename string, src io.Reader) (string, error)
	Remove(path string) error
}
