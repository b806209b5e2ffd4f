//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/domain/model"
)

func databaseConfig(t *testing.T) config.DatabaseConfig {
	return config.DatabaseConfig{
		URI:                            getSharedContainerURI(),
		DatabaseName:                   sanitizeDBNameForApp(t.Name()),
		LogsTTL:                        30 * 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(databaseConfig(t))
		require.NotNil(t, components)
		t.Cleanup(func() { components.Close(ctx) })

		assert.NotNil(t, components.DB)
		assert.NotNil(t, components.LoggingService)
		require.NotNil(t, components.LogsCircuitBreaker)
		assert.True(t, components.LogsCircuitBreaker.GetStats().IsHealthy)
		assert.NoError(t, components.DB.HealthCheck(ctx))
	})

	t.Run("audit logs round trip", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(databaseConfig(t))
		require.NotNil(t, components)
		t.Cleanup(func() { components.Close(ctx) })

		entry := &model.LogEntry{
			Timestamp:  time.Now(),
			Level:      "info",
			Message:    "quantity set",
			RequestID:  "req-1",
			ActionType: "set_quantity",
		}
		require.NoError(t, components.LoggingService.CreateLog(ctx, entry))

		count, err := components.LoggingService.CountLogs(ctx, model.LogQueryOptions{RequestID: "req-1"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("unreachable database", func(t *testing.T) {
		t.Parallel()
		cfg := databaseConfig(t)
		cfg.URI = "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500&connectTimeoutMS=500"
		assert.Nil(t, InitializeDatabase(cfg))
	})
}

func TestInitializeStateRepository_MongoDB_Integration(t *testing.T) {
	ctx := context.Background()
	db := InitializeDatabase(databaseConfig(t))
	require.NotNil(t, db)
	t.Cleanup(func() { db.Close(ctx) })

	cfg := config.Config{
		Quote:    config.QuoteConfig{StateBackend: config.StateBackendMongoDB},
		Database: databaseConfig(t),
	}
	state := InitializeStateRepository(ctx, cfg, db)

	require.Equal(t, config.StateBackendMongoDB, state.Backend)
	require.NotNil(t, state.HealthChecker)
	assert.NoError(t, state.HealthChecker.Check(ctx))

	saved := model.NewQuoteState()
	saved.ClientTier = model.TierConsumidor
	saved.Items["NS"] = model.QuoteItem{Quantity: 2, Active: true}
	require.NoError(t, state.Repo.Save(ctx, "cotizador-state", saved))

	loaded, err := state.Repo.Load(ctx, "cotizador-state")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, model.TierConsumidor, loaded.ClientTier)
	assert.Equal(t, model.QuoteItem{Quantity: 2, Active: true}, loaded.Items["NS"])
}
