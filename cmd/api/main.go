package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"hostelez/internal/app"
	"hostelez/internal/cloudinary"
	"hostelez/internal/config"
	"hostelez/internal/errreport"
	"hostelez/internal/httpapi"
	"hostelez/internal/httpmiddleware"
)

func main() {
	cfg := config.Load()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := runHTTP(cfg); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}

func runHTTP(cfg config.App) error {
	report := errreport.New(cfg)
	defer report.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rt, err := app.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	// nil when not configured; uploads then answer 503
	var uploads httpapi.Uploader
	if cfg.CloudinaryCloudName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		uploads = cloudinary.New(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		log.Println("Cloudinary configured:", cfg.CloudinaryCloudName)
	} else {
		log.Println("Cloudinary not configured (CLOUDINARY_CLOUD_NAME / API_KEY / API_SECRET not set)")
	}

	var limiter *httpmiddleware.TokenBucket
	if cfg.RateLimitPerMin > 0 {
		limiter = httpmiddleware.NewTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin, clockwork.NewRealClock())
	}

	h := httpapi.New(rt.Services, rt.Signer, uploads, report, rt.Checks)
	r := httpapi.NewRouter(h, httpapi.RouterOptions{
		Limiter:        limiter,
		AllowedOrigins: cfg.AllowedOrigins,
		AccessLog:      true,
	})

	workerDone := make(chan struct{})
	if cfg.EmbeddedWorker {
		go func() {
			defer close(workerDone)
			rt.RunWorker(ctx, cfg, report)
		}()
	} else {
		close(workerDone)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on :%s (build %s)", cfg.HTTPPort, cfg.Build)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 10 seconds to complete
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced shutdown: %v", err)
	}
	cancel()
	<-workerDone

	log.Println("Server exited")
	return nil
}
