package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/satwik073/Priscus-server/config"
	"github.com/satwik073/Priscus-server/internal/bootstrap"
	"github.com/satwik073/Priscus-server/internal/generation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(cfg.Store)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("store close: %v", err)
		}
	}()

	// The server starts even when the store is down; requests retry the connect.
	if err := store.Connect(ctx); err != nil {
		log.Printf("[warn] store %s not connected at startup: %v", cfg.Store.Driver, err)
	} else {
		log.Printf("[info] store %s connected", cfg.Store.Driver)
	}

	oracle, err := bootstrap.OpenLLM(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("llm: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		Store:       store,
		Generator:   generation.NewGenerator(oracle),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("%s listening on :%s (env=%s, llm=%s)", cfg.App.Name, cfg.Server.Port, cfg.App.Environment, cfg.LLM.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
