package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vesoapp/veso-backend/api/routes"
	"github.com/vesoapp/veso-backend/internal/cache"
	"github.com/vesoapp/veso-backend/internal/config"
	"github.com/vesoapp/veso-backend/internal/handlers"
	"github.com/vesoapp/veso-backend/internal/repositories"
	mongorepo "github.com/vesoapp/veso-backend/internal/repositories/mongodb"
	"github.com/vesoapp/veso-backend/internal/services"
	"github.com/vesoapp/veso-backend/pkg/mongodb"
	"github.com/vesoapp/veso-backend/pkg/relay"
	"github.com/vesoapp/veso-backend/pkg/vision"
)

func main() {
	// .env is optional; deployments set real environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The durable cache tier is optional: without a MongoDB URI the service
	// still runs, it just re-scrapes across restarts.
	var durable repositories.ResultCacheRepository
	if cfg.MongoDB.URI != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		client, err := mongodb.NewClient(connectCtx, cfg.MongoDB.URI)
		cancel()
		if err != nil {
			slog.Warn("mongodb unavailable, running without durable cache", "error", err)
		} else {
			defer func() {
				if err := client.Disconnect(context.Background()); err != nil {
					slog.Warn("mongodb disconnect failed", "error", err)
				}
			}()
			durable, err = mongorepo.NewResultCacheRepository(ctx, client.Database(cfg.MongoDB.Database))
			if err != nil {
				slog.Warn("result cache repository init failed, running without durable cache", "error", err)
				durable = nil
			}
		}
	} else {
		slog.Info("no MONGODB_URI configured, durable cache disabled")
	}

	relayClient := relay.NewClient(cfg.Relay.BaseURL, cfg.Relay.Timeout)
	memory := cache.NewMemory(cfg.Cache.MemoryTTL)

	resultService := services.NewResultService(relayClient, memory, durable, cfg.Cache.DurableTTL, cfg.Relay.SourceDelay)
	scheduleService := services.NewScheduleService()
	ticketService := services.NewTicketService()
	ocrService := services.NewOCRService(buildEngines(ctx, cfg)...)

	deps := routes.HandlerDependencies{
		ResultHandler:   handlers.NewResultHandler(resultService),
		OCRHandler:      handlers.NewOCRHandler(ocrService),
		TicketHandler:   handlers.NewTicketHandler(resultService, ticketService),
		ScheduleHandler: handlers.NewScheduleHandler(scheduleService),
	}

	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exiting")
}

// buildEngines registers every OCR engine whose credentials are present,
// honoring the configured default as the preferred engine. Tesseract needs no
// credentials and always closes the list.
func buildEngines(ctx context.Context, cfg *config.Config) []vision.Recognizer {
	var engines []vision.Recognizer

	if cfg.OCR.GeminiAPIKey != "" {
		gemini, err := vision.NewGemini(ctx, cfg.OCR.GeminiAPIKey)
		if err != nil {
			slog.Warn("gemini engine unavailable", "error", err)
		} else {
			engines = append(engines, gemini)
		}
	}
	if cfg.OCR.OpenAIAPIKey != "" {
		engines = append(engines, vision.NewOpenAI(cfg.OCR.OpenAIAPIKey))
	}
	engines = append(engines, vision.NewTesseract())

	if cfg.OCR.DefaultEngine != "" {
		for i, e := range engines {
			if e.Name() == cfg.OCR.DefaultEngine && i > 0 {
				engines[0], engines[i] = engines[i], engines[0]
				break
			}
		}
	}

	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = e.Name()
	}
	slog.Info("ocr engines registered", "engines", names)

	return engines
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
