package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inamate/sketchpad/internal/config"
	"github.com/inamate/sketchpad/internal/demo"
	"github.com/inamate/sketchpad/internal/engine"
	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/live"
	mw "github.com/inamate/sketchpad/internal/middleware"
	"github.com/inamate/sketchpad/internal/preview"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	geom.SetLogger(logger)

	if _, err := demo.New(cfg.Demo); err != nil {
		slog.Error("invalid demo", "error", err, "available", demo.Names())
		os.Exit(1)
	}

	handler, err := newRouter(cfg)
	if err != nil {
		slog.Error("build routes", "error", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr, "demo", cfg.Demo)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// newRouter wires the preview endpoints and the live session endpoint.
// Every session gets an engine configured from cfg.
func newRouter(cfg *config.Config) (http.Handler, error) {
	newEngine := func() (*engine.Engine, error) {
		eng := engine.NewEngine()
		if err := eng.LoadProgram(cfg.Demo); err != nil {
			return nil, err
		}
		eng.Resize(cfg.FrameWidth, cfg.FrameHeight)
		eng.SetRotation(cfg.RotationStep, cfg.TickInterval)
		return eng, nil
	}

	previewHandler := preview.NewHandler(preview.Defaults{
		Program: cfg.Demo,
		Width:   cfg.FrameWidth,
		Height:  cfg.FrameHeight,
	})

	origins, err := mw.NewOriginChecker(cfg.Origins())
	if err != nil {
		return nil, fmt.Errorf("allowed origins: %w", err)
	}

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(origins))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Single frames
	r.HandleFunc("/render", previewHandler.Render).Methods("GET", "OPTIONS")
	r.HandleFunc("/render.png", previewHandler.RenderPNG).Methods("GET", "OPTIONS")
	r.HandleFunc("/polygon.svg", previewHandler.PolygonSVG).Methods("GET", "OPTIONS")

	// Interactive session
	r.HandleFunc("/ws", live.Handler(newEngine, cfg.Origins()))

	return r, nil
}
