// Package app provides quote state backend selection.
package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/circuitbreaker"
	"github.com/guttosm/quote-service/internal/http"
	"github.com/guttosm/quote-service/internal/repository"
)

// StateComponents holds the quote state backend.
type StateComponents struct {
	Backend        string
	Repo           repository.QuoteStateRepositoryInterface
	CircuitBreaker *circuitbreaker.CircuitBreaker
	HealthChecker  http.HealthChecker
	redisClient    *redis.Client
}

// Close releases the backend connection. MongoDB is closed with DatabaseComponents.
func (s *StateComponents) Close() {
	if s == nil || s.redisClient == nil {
		return
	}
	if err := s.redisClient.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close Redis client")
	}
}

// InitializeStateRepository selects the quote state backend. A remote backend
// that cannot be reached falls back to memory so the service still starts.
func InitializeStateRepository(ctx context.Context, cfg config.Config, db *DatabaseComponents) *StateComponents {
	switch cfg.Quote.StateBackend {
	case config.StateBackendMongoDB:
		if db == nil {
			log.Warn().Msg("STATE_BACKEND=mongodb requires MONGODB_ENABLED - using memory")
			return memoryState()
		}
		cb := newCircuitBreaker(cfg.Database, "mongodb-quote-state")
		return &StateComponents{
			Backend:        config.StateBackendMongoDB,
			Repo:           repository.NewQuoteStateRepositoryWithCircuitBreaker(repository.NewMongoQuoteStateRepository(db.DB), cb),
			CircuitBreaker: cb,
			HealthChecker:  http.HealthCheckFunc(db.DB.HealthCheck),
		}

	case config.StateBackendRedis:
		connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		client, err := repository.NewRedisClient(connectCtx, repository.RedisConfig{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		})
		if err != nil {
			log.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis - using memory")
			return memoryState()
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Connected to Redis")

		redisRepo := repository.NewRedisQuoteStateRepository(client)
		cb := newCircuitBreaker(cfg.Database, "redis-quote-state")
		return &StateComponents{
			Backend:        config.StateBackendRedis,
			Repo:           repository.NewQuoteStateRepositoryWithCircuitBreaker(redisRepo, cb),
			CircuitBreaker: cb,
			HealthChecker:  http.HealthCheckFunc(redisRepo.HealthCheck),
			redisClient:    client,
		}

	default:
		return memoryState()
	}
}

func memoryState() *StateComponents {
	return &StateComponents{
		Backend: config.StateBackendMemory,
		Repo:    repository.NewMemoryQuoteStateRepository(),
	}
}
