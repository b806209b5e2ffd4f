package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/metrics"
	"github.com/guttosm/quote-service/internal/repository"
)

// DefaultStateKey is the storage key of the single quote session.
const DefaultStateKey = "cotizador-state"

// persistTimeout bounds the save that follows a mutation. The save is
// detached from the request so an aborted request still persists.
const persistTimeout = 5 * time.Second

// Mutation names used in metrics and audit entries.
const (
	OpSetQuantity     = "set_quantity"
	OpToggleActive    = "toggle_active"
	OpSelectAll       = "select_all"
	OpClearAll        = "clear_all"
	OpSetClientTier   = "set_client_tier"
	OpSetClientName   = "set_client_name"
	OpSetSearchFilter = "set_search_filter"
)

// QuoteStore owns the quote state and writes it through to the repository
// after every mutation. Persistence failures are logged and never returned.
type QuoteStore struct {
	mu    sync.Mutex
	repo  repository.QuoteStateRepositoryInterface
	key   string
	state model.QuoteState
}

// NewQuoteStore creates a store holding a fresh state. repo may be nil, in
// which case nothing is persisted.
func NewQuoteStore(repo repository.QuoteStateRepositoryInterface, key string) *QuoteStore {
	if key == "" {
		key = DefaultStateKey
	}
	return &QuoteStore{
		repo:  repo,
		key:   key,
		state: model.NewQuoteState(),
	}
}

// Key returns the storage key.
func (s *QuoteStore) Key() string {
	return s.key
}

// Load replaces the in-memory state with the persisted one. A missing,
// unreadable or corrupt state resets to a fresh state.
func (s *QuoteStore) Load(ctx context.Context) model.QuoteState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.load(ctx)
	return s.state.Clone()
}

func (s *QuoteStore) load(ctx context.Context) model.QuoteState {
	if s.repo == nil {
		return model.NewQuoteState()
	}

	stored, err := s.repo.Load(ctx, s.key)
	switch {
	case errors.Is(err, repository.ErrCorruptState):
		metrics.RecordPersistence("load", "corrupt")
		log.Warn().Err(err).Str("state_key", s.key).Msg("Stored quote state is corrupt, starting fresh")
		return model.NewQuoteState()
	case err != nil:
		metrics.RecordPersistence("load", "error")
		log.Warn().Err(err).Str("state_key", s.key).Msg("Failed to load quote state, starting fresh")
		return model.NewQuoteState()
	case stored == nil:
		metrics.RecordPersistence("load", "missing")
		return model.NewQuoteState()
	}

	metrics.RecordPersistence("load", "success")
	state := stored.Clone()
	state.Normalize()
	return state
}

// Save writes the current state to the repository.
func (s *QuoteStore) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

func (s *QuoteStore) save(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Save(ctx, s.key, s.state.Clone()); err != nil {
		metrics.RecordPersistence("save", "error")
		return err
	}
	metrics.RecordPersistence("save", "success")
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *QuoteStore) Snapshot() model.QuoteState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// mutate applies fn under the lock and persists the result.
func (s *QuoteStore) mutate(ctx context.Context, op string, fn func(*model.QuoteState)) model.QuoteState {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	metrics.RecordMutation(op)

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err := s.save(saveCtx); err != nil {
		log.Warn().Err(err).
			Str("state_key", s.key).
			Str("operation", op).
			Msg("Failed to persist quote state")
	}
	return s.state.Clone()
}

// SetQuantity sets the quantity of code to max(0, floor(qty)). The item
// becomes active when qty is positive and stays active if it already was.
func (s *QuoteStore) SetQuantity(ctx context.Context, code string, qty float64) model.QuoteItem {
	quantity := SanitizeQuantity(qty)
	state := s.mutate(ctx, OpSetQuantity, func(st *model.QuoteState) {
		prev := st.Items[code]
		st.Items[code] = model.QuoteItem{
			Quantity: quantity,
			Active:   prev.Active || quantity > 0,
		}
	})
	return state.Items[code]
}

// ToggleActive flips the active flag of code, keeping its quantity.
func (s *QuoteStore) ToggleActive(ctx context.Context, code string) model.QuoteItem {
	state := s.mutate(ctx, OpToggleActive, func(st *model.QuoteState) {
		prev := st.Items[code]
		st.Items[code] = model.QuoteItem{
			Quantity: prev.Quantity,
			Active:   !prev.Active,
		}
	})
	return state.Items[code]
}

// SelectAll activates every catalog product. Existing quantities are kept,
// zero quantities become 1, and entries outside the catalog are dropped.
func (s *QuoteStore) SelectAll(ctx context.Context, catalog model.Catalog) model.QuoteState {
	return s.mutate(ctx, OpSelectAll, func(st *model.QuoteState) {
		items := make(map[string]model.QuoteItem, catalog.Len())
		for _, p := range catalog.Products() {
			qty := st.Items[p.Code].Quantity
			if qty <= 0 {
				qty = 1
			}
			items[p.Code] = model.QuoteItem{Quantity: qty, Active: true}
		}
		st.Items = items
	})
}

// ClearAll removes every item. Client data and the search filter are kept.
func (s *QuoteStore) ClearAll(ctx context.Context) model.QuoteState {
	return s.mutate(ctx, OpClearAll, func(st *model.QuoteState) {
		st.Items = make(map[string]model.QuoteItem)
	})
}

// SetClientTier replaces the client tier. Unknown values are stored as given.
func (s *QuoteStore) SetClientTier(ctx context.Context, tier model.ClientTier) model.QuoteState {
	return s.mutate(ctx, OpSetClientTier, func(st *model.QuoteState) {
		st.ClientTier = tier
	})
}

// SetClientName replaces the client name.
func (s *QuoteStore) SetClientName(ctx context.Context, name string) model.QuoteState {
	return s.mutate(ctx, OpSetClientName, func(st *model.QuoteState) {
		st.ClientName = name
	})
}

// SetSearchFilter replaces the search term.
func (s *QuoteStore) SetSearchFilter(ctx context.Context, term string) model.QuoteState {
	return s.mutate(ctx, OpSetSearchFilter, func(st *model.QuoteState) {
		st.SearchTerm = term
	})
}
