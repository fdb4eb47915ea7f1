package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"realestate_api_backend/internal/ai"
	"realestate_api_backend/internal/analysis"
	analysissvc "realestate_api_backend/internal/analysis/service"
	"realestate_api_backend/internal/chat"
	apphttp "realestate_api_backend/internal/http"
	"realestate_api_backend/internal/http/router"
	"realestate_api_backend/internal/places"
	"realestate_api_backend/internal/scrape"
	"realestate_api_backend/internal/voice"
	"realestate_api_backend/platform/config"
	"realestate_api_backend/platform/logger"
	"realestate_api_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// Shared validator instance for dependency injection
	val := validator.New()

	var narrator analysissvc.Narrator
	var completer chat.Completer
	if cfg.IsAIEnabled() {
		aiClient, err := ai.NewClient(ctx, cfg, log)
		if err != nil {
			log.Error("failed to initialize AI client", "error", err)
			panic("failed to initialize AI client: " + err.Error())
		}
		narrator = aiClient
		completer = aiClient
		log.Info("AI client initialized", "model", cfg.GetGeminiModel())
	} else {
		log.Warn("GEMINI_API_KEY not configured; AI analysis degraded")
		narrator = ai.Unconfigured{}
		completer = ai.Unconfigured{}
	}

	placesClient := places.NewClient(cfg, log)
	if !cfg.IsPlacesEnabled() {
		log.Warn("GOOGLE_PLACES_API_KEY not configured; neighborhood enrichment degraded")
	}

	scrapeSvc := scrape.NewService(cfg, log)
	voiceSvc := voice.NewService(cfg, log)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	analysisModule := analysis.NewModule(placesClient, narrator, val, log)
	chatModule := chat.NewModule(completer, log)
	scrapeModule := scrape.NewModule(scrapeSvc)
	voiceModule := voice.NewModule(voiceSvc, cfg.GetVoiceDefaultRegion(), log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			analysisModule,
			chatModule,
			scrapeModule,
			voiceModule,
		},
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router.New(app),
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
