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

	"orbit-assistant/internal/adapter/httpapi"
	"orbit-assistant/internal/di"
	"orbit-assistant/internal/infrastructure/env"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envService := env.NewEnvService()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, di.Config{
		LogName:       "orbit-server",
		LogLevel:      envService.GetWithDefault(env.KeyLogLevel, "info"),
		SearchTimeout: envService.SearchTimeout(),
	})
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}
	defer container.Close()

	handler := httpapi.NewChatHandler(container.Chat, envService.ChatConfig, container.Logger)
	addr := envService.GetWithDefault(env.KeyHTTPAddr, ":8080")

	server := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewRouter(handler, "orbit-server"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			container.Logger.Error("Server shutdown failed", "error", err)
		}
	}()

	container.Logger.Info("HTTP server listening", "addr", addr)
	log.Printf("Orbit server listening on %s", addr)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		container.Logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
