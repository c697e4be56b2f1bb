package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	BotToken string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	RedisHost string
	RedisPort string

	KafkaBroker      string
	OrderEventsTopic string

	HTTPAddr string

	BotSvcURL   string
	StatsSvcURL string

	CityCenterLat float64
	CityCenterLon float64
	MaxDistanceKm float64

	SessionTTL      time.Duration
	CancelReasonTTL time.Duration
	NotifyTimeout   time.Duration
	NotifyAttempts  int
	Workers         int

	Location    *time.Location
	FeedbackURL string
}

// Load reads .env when present and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] .env not loaded: %v", err)
	}

	cfg := Config{
		BotToken:         os.Getenv("BOT_TOKEN"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           getString("DB_PORT", "5432"),
		DBName:           os.Getenv("DB_NAME"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		RedisHost:        getString("REDIS_HOST", "localhost"),
		RedisPort:        getString("REDIS_PORT", "6379"),
		KafkaBroker:      os.Getenv("KAFKA_BROKER"),
		OrderEventsTopic: getString("ORDER_EVENTS_TOPIC", "order-events"),
		HTTPAddr:         getString("HTTP_ADDR", ":8080"),
		BotSvcURL:        getString("BOT_SVC_URL", "http://localhost:8081"),
		StatsSvcURL:      getString("STATS_SVC_URL", "http://localhost:8082"),
		CityCenterLat:    getFloat("CITY_CENTER_LAT", 38.2758164),
		CityCenterLon:    getFloat("CITY_CENTER_LON", 67.894829),
		MaxDistanceKm:    getFloat("MAX_DISTANCE_KM", 6),
		SessionTTL:       getDuration("SESSION_TTL", 30*time.Minute),
		CancelReasonTTL:  getDuration("CANCEL_REASON_TTL", 24*time.Hour),
		NotifyTimeout:    getDuration("NOTIFY_TIMEOUT", 5*time.Second),
		NotifyAttempts:   getInt("NOTIFY_ATTEMPTS", 3),
		Workers:          getInt("WORKERS", 16),
		FeedbackURL:      os.Getenv("FEEDBACK_URL"),
	}

	cfg.Location = time.Local
	if tz := getString("TIMEZONE", "Asia/Tashkent"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("[config] unknown TIMEZONE %q, using local time: %v", tz, err)
		} else {
			cfg.Location = loc
		}
	}

	return cfg
}

// Service selects which keys Validate treats as required.
type Service int

const (
	BotService Service = iota
	StatsService
)

// Validate reports the required keys that are missing for svc. The stats
// service needs only the broker, Redis has usable defaults.
func (c Config) Validate(svc Service) error {
	var missing []string
	switch svc {
	case BotService:
		if c.BotToken == "" {
			missing = append(missing, "BOT_TOKEN")
		}
		if c.DBHost == "" {
			missing = append(missing, "DB_HOST")
		}
		if c.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
		if c.DBUser == "" {
			missing = append(missing, "DB_USER")
		}
	case StatsService:
		if c.KafkaBroker == "" {
			missing = append(missing, "KAFKA_BROKER")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if svc == BotService && c.MaxDistanceKm <= 0 {
		return fmt.Errorf("MAX_DISTANCE_KM must be positive, got %v", c.MaxDistanceKm)
	}
	return nil
}

func (c Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func MustInitPostgres(cfg Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// MustInitTelegram builds a Bot API client whose HTTP requests give up after
// timeout. Long polling needs a timeout above the poll interval.
func MustInitTelegram(cfg Config, timeout time.Duration) *tgbotapi.BotAPI {
	bot, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, &http.Client{Timeout: timeout})
	if err != nil {
		log.Fatal("Failed to connect to Telegram:", err)
	}
	return bot
}

// NewKafkaReader returns nil when no broker is configured.
func NewKafkaReader(cfg Config, topic, groupID string) *kafka.Reader {
	if cfg.KafkaBroker == "" {
		return nil
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   topic,
		GroupID: groupID,
	})
}

// NewKafkaWriter returns nil when no broker is configured.
func NewKafkaWriter(cfg Config, topic string) *kafka.Writer {
	if cfg.KafkaBroker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
