package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/BANCESQWQ/bobisfinal/pkg/logger"
)

func TestNew_AplicaElNivelConfigurado(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	casos := []string{"", "verbose", "INFO "}
	for _, nivel := range casos {
		l := logger.New(logger.Config{Env: "production", Level: nivel})
		assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel(), "nivel %q", nivel)
	}
}
