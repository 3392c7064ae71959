package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hostelez/internal/app"
	"hostelez/internal/config"
	"hostelez/internal/errreport"
)

// Worker runs the reminder scans and delivers queued reminders to the inbox.
func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	report := errreport.New(cfg)
	defer report.Close()

	if cfg.QueueBackend == "memory" {
		log.Println("WARNING: memory queue in a standalone worker; reminders never leave this process")
	}

	rt, err := app.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer rt.Close()

	log.Println("worker started")
	rt.RunWorker(ctx, cfg, report)
	log.Println("worker stopped")
}
