package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/otey247/diagram-creator/internal/completion"
	"github.com/otey247/diagram-creator/internal/config"
	"github.com/otey247/diagram-creator/internal/handler"
	"github.com/otey247/diagram-creator/internal/logger"
	"github.com/otey247/diagram-creator/internal/service"
	"github.com/otey247/diagram-creator/internal/web"
	"go.uber.org/zap"

	_ "github.com/otey247/diagram-creator/docs"
)

// @title diagram-creator API
// @version 1.0
// @description Turns a natural-language subject into Mermaid diagram markup.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.OpenAI.APIKey == "" {
		zl.Warn("OPENAI_API_KEY is not set, generation requests will fail until it is configured")
	}

	completer := completion.NewOpenAI(zl, completion.NewClient(cfg.OpenAI), cfg.OpenAI)
	diagramService := service.NewDiagramService(zl, completer)
	askHandler := handler.NewAskHandler(diagramService, zl, cfg.IsProduction())

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler.NewRouter(zl, askHandler, web.NewPage(zl)),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	go func() {
		zl.Info("server started", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("listen error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}
	zl.Info("server stopped")
}
