// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/http"
)

// closeTimeout bounds the final state flush and database disconnect.
const closeTimeout = 5 * time.Second

// App holds the wired application and everything that must be released on exit.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents
	State    *StateComponents
	Database *DatabaseComponents
	routing  *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	// Logger first, everything below logs through it
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)
	state := InitializeStateRepository(ctx, cfg, dbComponents)
	log.Info().Str("backend", state.Backend).Msg("Quote state backend selected")

	services, err := InitializeServices(ctx, cfg.Quote, state.Repo)
	if err != nil {
		state.Close()
		dbComponents.Close(ctx)
		return nil, err
	}

	routing := InitializeRouter(services, state, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routing.Handler, routing.HealthHandler, routing.Config),
		Services: services,
		State:    state,
		Database: dbComponents,
		routing:  routing,
	}, nil
}

// Close flushes pending audit entries and persists the final state before
// releasing backend connections.
func (a *App) Close() {
	if a == nil {
		return
	}
	if a.routing != nil && a.routing.AuditLogger != nil {
		a.routing.AuditLogger.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if a.Services != nil {
		if err := a.Services.Store.Save(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to persist quote state on shutdown")
		}
		a.Services.QuoteService.Close()
	}
	a.State.Close()
	a.Database.Close(ctx)
}
