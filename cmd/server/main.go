package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"boardpulse/internal/config"
	"boardpulse/internal/scheduler"
	"boardpulse/internal/server"
	"boardpulse/internal/storage"
	"boardpulse/internal/storage/providers"
	httptransport "boardpulse/internal/transport/http"
)

func main() {
	cfg := config.MustLoad()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := storage.InitDB(cfg.DatabaseUrl)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	allProviders := providers.New(db)
	scheduler.NewSessionJanitor(allProviders.AuthProvider, cfg.Scheduler.SessionPurgeInterval).Start(ctx)

	router := httptransport.Router(db, cfg)

	addr := ":" + cfg.Server.Port
	log.Printf("listening on %s", addr)
	if err := server.Start(ctx, addr, cfg.Server.AllowedOrigins, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
