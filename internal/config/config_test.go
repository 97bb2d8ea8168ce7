package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "STORE_DRIVER", "EVENT_BROKER", "SWEEP_INTERVAL", "EMAIL_FROM", "EMAIL_USER", "KAFKA_BROKERS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverMySQL, cfg.StoreDriver)
	assert.Equal(t, BrokerNone, cfg.EventBroker)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
	assert.Equal(t, []string{"127.0.0.1:9092"}, cfg.KafkaBrokers)
	assert.Empty(t, cfg.EmailFrom)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("EVENT_BROKER", "rabbit")
	t.Setenv("SWEEP_INTERVAL", "30s")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092,")
	t.Setenv("EMAIL_FROM", "")
	t.Setenv("EMAIL_USER", "club@ithub.dev")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, BrokerRabbit, cfg.EventBroker)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "club@ithub.dev", cfg.EmailFrom)
	assert.True(t, cfg.Debug)
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL", "-5s")
	assert.Equal(t, time.Minute, Load().SweepInterval)
}
