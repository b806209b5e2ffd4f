package repository

import (
	"context"
	"errors"

	"github.com/guttosm/quote-service/internal/circuitbreaker"
	"github.com/guttosm/quote-service/internal/domain/model"
)

// QuoteStateRepositoryWithCircuitBreaker guards a remote state backend.
type QuoteStateRepositoryWithCircuitBreaker struct {
	repo           QuoteStateRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewQuoteStateRepositoryWithCircuitBreaker wraps repo with cb.
func NewQuoteStateRepositoryWithCircuitBreaker(repo QuoteStateRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *QuoteStateRepositoryWithCircuitBreaker {
	return &QuoteStateRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Load reports "nothing stored" while the circuit is open so the caller starts
// from a fresh state. A corrupt blob is not a backend failure and does not
// count against the breaker.
func (r *QuoteStateRepositoryWithCircuitBreaker) Load(ctx context.Context, key string) (*model.QuoteState, error) {
	var (
		result  *model.QuoteState
		corrupt error
	)
	err := r.circuitBreaker.Execute(ctx, func() error {
		state, loadErr := r.repo.Load(ctx, key)
		if errors.Is(loadErr, ErrCorruptState) {
			corrupt = loadErr
			return nil
		}
		result = state
		return loadErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if corrupt != nil {
		return nil, corrupt
	}
	return result, nil
}

// Save writes through the breaker. ErrCircuitOpen is returned while open.
func (r *QuoteStateRepositoryWithCircuitBreaker) Save(ctx context.Context, key string, state model.QuoteState) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, key, state)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *QuoteStateRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores one entry. Entries are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores entries in bulk. Entries are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
