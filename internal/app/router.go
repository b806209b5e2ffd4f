// Package app provides router configuration.
package app

import (
	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/http"
	"github.com/guttosm/quote-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	AuditLogger   *middleware.AsyncLogger
}

// InitializeRouter initializes HTTP handlers and router configuration.
// Audit logging is enabled when MongoDB is available.
func InitializeRouter(
	services *ServiceComponents,
	state *StateComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var (
		auditLogger *middleware.AsyncLogger
		auditSink   middleware.AuditSink
	)
	if dbComponents != nil && dbComponents.LoggingService != nil {
		auditLogger = middleware.NewAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
		auditSink = auditLogger
	}

	var handlerOpts []http.HandlerOption
	if auditSink != nil {
		handlerOpts = append(handlerOpts, http.WithAuditSink(auditSink))
	}
	handler := http.NewHandler(services.QuoteService, handlerOpts...)

	healthHandler := http.NewHealthHandler()
	if state != nil {
		healthHandler.RegisterChecker(state.Backend, state.HealthChecker)
		healthHandler.RegisterCircuitBreaker(state.Backend, state.CircuitBreaker)
	}
	if dbComponents != nil && dbComponents.DB != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		AuditSink:      auditSink,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
		AuditLogger:   auditLogger,
	}
}
