package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"overcooked-bot/api-gateway/internal/gateway"
	"overcooked-bot/config"

	"github.com/rs/cors"
)

const upstreamTimeout = 15 * time.Second

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw := gateway.NewGateway(gateway.Config{
		BotSvcURL:   cfg.BotSvcURL,
		StatsSvcURL: cfg.StatsSvcURL,
	}, &http.Client{Timeout: upstreamTimeout})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: c.Handler(gw.SetupRoutes()), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("API Gateway starting on %s", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	log.Printf("[api-gateway] shut down")
}
