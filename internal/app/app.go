package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"text-extractor/internal/config"
	"text-extractor/internal/domain"
	"text-extractor/internal/engine/pdftext"
	"text-extractor/internal/engine/poppler"
	"text-extractor/internal/engine/tesseract"
	extract_h "text-extractor/internal/http-server/handler/extract"
	"text-extractor/internal/http-server/router"
	"text-extractor/internal/staging"
	extract_uc "text-extractor/internal/usecase/extract"

	"github.com/wb-go/wbf/zlog"
)

type App struct {
	cfg    *config.Config
	server *http.Server
	logger *zlog.Zerolog
}

func NewApp(cfg *config.Config, logger *zlog.Zerolog) (*App, error) {
	stager, err := staging.New(cfg.Staging.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to create staging store: %w", err)
	}

	recognizer := tesseract.New(domain.OCRLanguage)
	reader := pdftext.New()
	rasterizer := poppler.New(cfg.Poppler.PdftoppmBin, stager.Dir())

	extractUsecase := extract_uc.NewUsecase(recognizer, reader, rasterizer, logger)

	extractHandler := extract_h.NewHandler(extractUsecase, stager, logger)

	h := &router.Handler{
		ExtractHandler: extractHandler,
	}

	mux := router.SetupRouter(h)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		cfg:    cfg,
		server: server,
		logger: logger,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Str("port", a.cfg.Server.Port).Msg("Starting server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.handleSignals(cancel)

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		a.logger.Error().Err(err).Msg("Server error")
		return err
	case <-ctx.Done():
		a.logger.Info().Msg("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error().Err(err).Msg("Server shutdown failed")
		}

		a.logger.Info().Msg("Server stopped gracefully")
		return nil
	}
}

func (a *App) handleSignals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	a.logger.Info().Str("signal", sig.String()).Msg("Received signal")
	cancel()
}
