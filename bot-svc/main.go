package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"overcooked-bot/bot-svc/internal/api/chat"
	httpapi "overcooked-bot/bot-svc/internal/api/http"
	"overcooked-bot/bot-svc/internal/domain"
	"overcooked-bot/bot-svc/internal/service"
	"overcooked-bot/bot-svc/internal/storage"
	"overcooked-bot/bot-svc/internal/telegram"
	"overcooked-bot/config"

	"golang.org/x/sync/errgroup"
)

const (
	notifyBackoff = 500 * time.Millisecond
	eventTimeout  = 30 * time.Second
	// outlasts the 60s long poll of telegram.Poller
	pollHTTPTimeout = 75 * time.Second
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(config.BotService); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to prepare schema:", err)
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()
	sessions := storage.NewRedisSessionStore(rdb, cfg.SessionTTL).
		WithTTL(domain.PurposeCancelReason, cfg.CancelReasonTTL)

	var publisher service.EventPublisher
	if writer := config.NewKafkaWriter(cfg, cfg.OrderEventsTopic); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Printf("[bot-svc] KAFKA_BROKER not set, order events disabled")
	}

	sender := config.MustInitTelegram(cfg, cfg.NotifyTimeout)
	messenger := service.NewRetryingMessenger(telegram.NewMessenger(sender), cfg.NotifyAttempts, cfg.NotifyTimeout, notifyBackoff)

	var qr service.QRGenerator
	if cfg.FeedbackURL != "" {
		qr = &service.FeedbackQRGenerator{BaseURL: cfg.FeedbackURL}
	}

	zone := domain.DeliveryZone{CenterLat: cfg.CityCenterLat, CenterLon: cfg.CityCenterLon, MaxKm: cfg.MaxDistanceKm}
	orders := service.NewOrderService(repo, repo, repo, repo, publisher)
	conversation := chat.NewConversation(chat.Services{
		Users:     service.NewUserService(repo),
		Catalog:   service.NewCatalogService(repo),
		Cart:      service.NewCartService(repo),
		Addresses: service.NewAddressService(repo, zone),
		Orders:    orders,
		Dispatch:  service.NewDispatchService(repo, sessions, messenger, publisher, qr),
		Sessions:  sessions,
		Messenger: messenger,
	}, func() time.Time { return time.Now().In(cfg.Location) })

	router := chat.NewRouter(ctx, conversation, cfg.Workers, eventTimeout)
	poller := telegram.NewPoller(config.MustInitTelegram(cfg, pollHTTPTimeout), router)
	handler := httpapi.NewRouter(httpapi.NewHandler(orders, router))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return poller.Run(gctx) })
	g.Go(func() error { return httpapi.StartServer(gctx, cfg.HTTPAddr, handler) })

	if err := g.Wait(); err != nil {
		log.Printf("[bot-svc] stopped: %v", err)
	}
	router.Wait()
	log.Printf("[bot-svc] shut down")
}
