package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"text-extractor/internal/domain"
	"text-extractor/internal/http-server/handler/extract/dto"

	"github.com/wb-go/wbf/zlog"
)

const (
	maxMemory = 32 << 20

	// Headroom over the upload ceiling for multipart framing; the actual
	// size check is done by seeking the file part.
	maxBodySize = domain.MaxUploadSize + 1<<20
)

type Handler struct {
	usecase extractUsecase
	stager  fileStager
	logger  *zlog.Zerolog
}

func NewHandler(usecase extractUsecase, stager fileStager, logger *zlog.Zerolog) *Handler {
	return &Handler{
		usecase: usecase,
		stager:  stager,
		logger:  logger,
	}
}

func (h *Handler) ExtractText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusBadRequest, oversizedMessage())
			return
		}
		h.logger.Warn().Err(err).Msg("Failed to parse multipart form")
		h.respondError(w, http.StatusBadRequest, "No file provided")
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if handler.Filename == "" {
		h.respondError(w, http.StatusBadRequest, "No file selected")
		return
	}

	if !domain.IsAllowedUpload(handler.Filename) {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf(
			"File type not allowed. Supported types: %s",
			strings.Join(domain.AllowedUploadExtensions, ", "),
		))
		return
	}

	size, err := measureSize(file)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", handler.Filename).Msg("Failed to measure upload size")
		h.respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if size > domain.MaxUploadSize {
		h.respondError(w, http.StatusBadRequest, oversizedMessage())
		return
	}

	// Validation passed; only now does anything touch the disk.
	path, err := h.stager.Stage(handler.Filename, file)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", handler.Filename).Msg("Failed to stage upload")
		h.respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer func() {
		if err := h.stager.Remove(path); err != nil {
			h.logger.Error().Err(err).Str("path", path).Msg("Failed to remove staged file")
		}
	}()

	result, err := h.usecase.Extract(ctx, path)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", handler.Filename).Msg("Extraction failed")
		h.respondError(w, http.StatusInternalServerError, "OCR processing failed: "+err.Error())
		return
	}

	h.logger.Info().
		Str("filename", handler.Filename).
		Str("file_type", string(result.FileType)).
		Int("text_len", len(result.Text)).
		Msg("Extraction completed")

	h.respondJSON(w, http.StatusOK, dto.ExtractResponse{
		Success:  true,
		Text:     result.Text,
		FileType: string(result.FileType),
		Filename: sanitizeFilename(handler.Filename),
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, dto.HealthResponse{
		Success:          true,
		Message:          "OCR service is running",
		SupportedFormats: domain.AllowedUploadExtensions,
		MaxFileSizeMB:    domain.MaxUploadSizeMB(),
	})
}

func (h *Handler) SupportedFormats(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, dto.FormatsResponse{
		Success:       true,
		Formats:       domain.AllowedUploadExtensions,
		MaxFileSizeMB: domain.MaxUploadSizeMB(),
	})
}

// measureSize seeks to the end of the part and back rather than trusting the
// declared content length.
func measureSize(file io.ReadSeeker) (int64, error) {
	size, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return size, nil
}

func oversizedMessage() string {
	return fmt.Sprintf("File size too large. Maximum size: %dMB", domain.MaxUploadSizeMB())
}

func sanitizeFilename(name string) string {
	name = filepath.Base(filepath.Clean(name))
	name = strings.ReplaceAll(name, " ", "_")
	return name
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Interface("data", data).Msg("Failed to encode response")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, dto.ErrorResponse{
		Success: false,
		Error:   message,
	})
}
