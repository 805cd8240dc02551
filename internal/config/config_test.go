package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{
		Host:     "db",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		Database: "ticketgate",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5432 user=postgres password=secret dbname=ticketgate sslmode=disable",
		p.DSN(),
	)
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	cases := map[string]logger.Level{
		"debug":   logger.DebugLevel,
		"info":    logger.InfoLevel,
		"warn":    logger.WarnLevel,
		"error":   logger.ErrorLevel,
		"unknown": logger.InfoLevel,
	}

	for level, want := range cases {
		cfg := LoggerConfig{Level: level}
		assert.Equal(t, want, cfg.LogLevel(), level)
	}
}
