//go:build integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/service"
)

func mongoAppConfig(t *testing.T) config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 5 * time.Second,
		},
		Quote: config.QuoteConfig{
			StateBackend: config.StateBackendMongoDB,
			StateKey:     service.DefaultStateKey,
		},
		Database: databaseConfig(t),
		Log:      config.LogConfig{Level: "error"},
	}
}

func TestInitializeApp_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("mongodb backend", func(t *testing.T) {
		app, err := InitializeApp(ctx, mongoAppConfig(t))
		require.NoError(t, err)
		t.Cleanup(app.Close)

		assert.NotNil(t, app.Database)
		assert.Equal(t, config.StateBackendMongoDB, app.State.Backend)

		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
		assert.Contains(t, w.Body.String(), `"mongodb_logs_circuit":"closed"`)
	})

	t.Run("state survives restart", func(t *testing.T) {
		cfg := mongoAppConfig(t)

		first, err := InitializeApp(ctx, cfg)
		require.NoError(t, err)

		for _, body := range []struct{ path, json string }{
			{"/api/quote/client", `{"tier": "consumidor", "name": "Ana"}`},
			{"/api/quote/items/OP/quantity", `{"quantity": 2}`},
			{"/api/quote/items/NS/quantity", `{"quantity": 1}`},
		} {
			req := httptest.NewRequest(http.MethodPut, body.path, strings.NewReader(body.json))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			first.Router.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}
		first.Close()

		second, err := InitializeApp(ctx, cfg)
		require.NoError(t, err)
		t.Cleanup(second.Close)

		state := second.Services.QuoteService.State()
		assert.Equal(t, "Ana", state.ClientName)
		assert.Equal(t, "1941.00", second.Services.QuoteService.Totals().Total.StringFixed(2))
	})

	t.Run("database disabled", func(t *testing.T) {
		cfg := mongoAppConfig(t)
		cfg.Database.Enabled = false

		app, err := InitializeApp(ctx, cfg)
		require.NoError(t, err)
		t.Cleanup(app.Close)

		assert.Nil(t, app.Database)
		assert.Equal(t, config.StateBackendMemory, app.State.Backend)
	})
}
