package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"CITY_CENTER_LAT", "CITY_CENTER_LON", "MAX_DISTANCE_KM", "SESSION_TTL", "CANCEL_REASON_TTL", "NOTIFY_ATTEMPTS", "ORDER_EVENTS_TOPIC"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, 38.2758164, cfg.CityCenterLat)
	assert.Equal(t, 67.894829, cfg.CityCenterLon)
	assert.Equal(t, 6.0, cfg.MaxDistanceKm)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 24*time.Hour, cfg.CancelReasonTTL)
	assert.Equal(t, 3, cfg.NotifyAttempts)
	assert.Equal(t, "order-events", cfg.OrderEventsTopic)
	assert.NotNil(t, cfg.Location)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MAX_DISTANCE_KM", "12.5")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("NOTIFY_ATTEMPTS", "not-a-number")
	t.Setenv("TIMEZONE", "UTC")

	cfg := Load()

	assert.Equal(t, 12.5, cfg.MaxDistanceKm)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 3, cfg.NotifyAttempts)
	assert.Equal(t, "UTC", cfg.Location.String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		svc     Service
		wantErr string
	}{
		{
			name: "complete bot",
			cfg:  Config{BotToken: "t", DBHost: "db", DBName: "food", DBUser: "bot", MaxDistanceKm: 6},
			svc:  BotService,
		},
		{
			name:    "missing token and db",
			cfg:     Config{MaxDistanceKm: 6},
			svc:     BotService,
			wantErr: "BOT_TOKEN, DB_HOST, DB_NAME, DB_USER",
		},
		{
			name:    "non-positive radius",
			cfg:     Config{BotToken: "t", DBHost: "db", DBName: "food", DBUser: "bot"},
			svc:     BotService,
			wantErr: "MAX_DISTANCE_KM",
		},
		{
			name: "stats without token or db",
			cfg:  Config{KafkaBroker: "kafka:9092"},
			svc:  StatsService,
		},
		{
			name:    "stats without broker",
			cfg:     Config{BotToken: "t", DBHost: "db", DBName: "food", DBUser: "bot", MaxDistanceKm: 6},
			svc:     StatsService,
			wantErr: "KAFKA_BROKER",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := testCase.cfg.Validate(testCase.svc)
			if testCase.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, testCase.wantErr)
		})
	}
}

func TestNewKafkaClients_NoBroker(t *testing.T) {
	cfg := Config{}
	assert.Nil(t, NewKafkaWriter(cfg, "order-events"))
	assert.Nil(t, NewKafkaReader(cfg, "order-events", "stats"))
}
