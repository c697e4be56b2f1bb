package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"overcooked-bot/config"
	httpapi "overcooked-bot/stats-svc/internal/api/http"
	"overcooked-bot/stats-svc/internal/service"
	"overcooked-bot/stats-svc/internal/storage"

	"golang.org/x/sync/errgroup"
)

const consumerGroup = "stats-svc"

func main() {
	cfg := config.Load()
	if err := cfg.Validate(config.StatsService); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()
	store := storage.NewStore(rdb)

	reader := config.NewKafkaReader(cfg, cfg.OrderEventsTopic, consumerGroup)
	defer reader.Close()

	consumer := service.NewConsumer(reader, store, cfg.Location)
	stats := service.NewStatsService(store, cfg.Location, time.Now)
	handler := httpapi.NewRouter(httpapi.NewHandler(stats))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return consumer.Start(gctx) })
	g.Go(func() error { return httpapi.StartServer(gctx, cfg.HTTPAddr, handler) })

	if err := g.Wait(); err != nil {
		log.Printf("[stats-svc] stopped: %v", err)
	}
	log.Printf("[stats-svc] shut down")
}
