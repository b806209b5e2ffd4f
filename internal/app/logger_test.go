//go:build !integration

package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/quote-service/config"
)

func TestInitializeLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		name          string
		cfg           config.LogConfig
		expectedLevel zerolog.Level
	}{
		{name: "empty level defaults to info", cfg: config.LogConfig{}, expectedLevel: zerolog.InfoLevel},
		{name: "debug", cfg: config.LogConfig{Level: "debug"}, expectedLevel: zerolog.DebugLevel},
		{name: "warn with pretty output", cfg: config.LogConfig{Level: "warn", Pretty: true}, expectedLevel: zerolog.WarnLevel},
		{name: "error", cfg: config.LogConfig{Level: "error"}, expectedLevel: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				InitializeLogger(tt.cfg)
			})
			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}
