//go:build !integration

package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quote-service/internal/catalog"
	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/mocks"
	"github.com/guttosm/quote-service/internal/repository"
)

func newMemoryStore(t *testing.T) (*QuoteStore, *repository.MemoryQuoteStateRepository) {
	t.Helper()
	repo := repository.NewMemoryQuoteStateRepository()
	return NewQuoteStore(repo, ""), repo
}

func TestNewQuoteStore(t *testing.T) {
	store := NewQuoteStore(nil, "")
	assert.Equal(t, DefaultStateKey, store.Key())

	state := store.Snapshot()
	assert.Empty(t, state.Items)
	assert.Equal(t, model.TierInversionista, state.ClientTier)
	assert.Empty(t, state.ClientName)
	assert.Empty(t, state.SearchTerm)

	assert.Equal(t, "custom", NewQuoteStore(nil, "custom").Key())
}

func TestQuoteStore_SetQuantity(t *testing.T) {
	tests := []struct {
		name     string
		prev     *model.QuoteItem
		qty      float64
		expected model.QuoteItem
	}{
		{name: "new item becomes active", qty: 3, expected: model.QuoteItem{Quantity: 3, Active: true}},
		{name: "fraction is floored", qty: 2.7, expected: model.QuoteItem{Quantity: 2, Active: true}},
		{name: "zero on new item stays inactive", qty: 0, expected: model.QuoteItem{Quantity: 0, Active: false}},
		{name: "negative clamps to zero", qty: -5, expected: model.QuoteItem{Quantity: 0, Active: false}},
		{name: "NaN is zero", qty: math.NaN(), expected: model.QuoteItem{Quantity: 0, Active: false}},
		{
			name:     "zero keeps an active item active",
			prev:     &model.QuoteItem{Quantity: 4, Active: true},
			qty:      0,
			expected: model.QuoteItem{Quantity: 0, Active: true},
		},
		{
			name:     "positive quantity reactivates",
			prev:     &model.QuoteItem{Quantity: 4, Active: false},
			qty:      1,
			expected: model.QuoteItem{Quantity: 1, Active: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newMemoryStore(t)
			ctx := context.Background()
			if tt.prev != nil {
				store.SetQuantity(ctx, "OP", float64(tt.prev.Quantity))
				if !tt.prev.Active {
					store.ToggleActive(ctx, "OP")
				}
			}

			item := store.SetQuantity(ctx, "OP", tt.qty)
			assert.Equal(t, tt.expected, item)
			assert.Equal(t, tt.expected, store.Snapshot().Items["OP"])
		})
	}
}

func TestQuoteStore_ToggleActive(t *testing.T) {
	store, _ := newMemoryStore(t)
	ctx := context.Background()

	item := store.ToggleActive(ctx, "OP")
	assert.Equal(t, model.QuoteItem{Quantity: 0, Active: true}, item)

	store.SetQuantity(ctx, "OP", 5)
	item = store.ToggleActive(ctx, "OP")
	assert.Equal(t, model.QuoteItem{Quantity: 5, Active: false}, item)

	item = store.ToggleActive(ctx, "OP")
	assert.Equal(t, model.QuoteItem{Quantity: 5, Active: true}, item)
}

func TestQuoteStore_SelectAll(t *testing.T) {
	store, _ := newMemoryStore(t)
	ctx := context.Background()
	c := catalog.Default()

	store.SetQuantity(ctx, "NS", 4)
	store.SetQuantity(ctx, "OP", 2)
	store.ToggleActive(ctx, "OP")
	store.SetQuantity(ctx, "ZZ", 9)

	state := store.SelectAll(ctx, c)

	assert.Len(t, state.Items, c.Len())
	assert.NotContains(t, state.Items, "ZZ")
	assert.Equal(t, model.QuoteItem{Quantity: 4, Active: true}, state.Items["NS"])
	assert.Equal(t, model.QuoteItem{Quantity: 2, Active: true}, state.Items["OP"])
	assert.Equal(t, model.QuoteItem{Quantity: 1, Active: true}, state.Items["SA"])
}

func TestQuoteStore_ClearAll(t *testing.T) {
	store, _ := newMemoryStore(t)
	ctx := context.Background()

	store.SetQuantity(ctx, "OP", 2)
	store.SetClientName(ctx, "Ana")
	store.SetClientTier(ctx, model.TierConsumidor)
	store.SetSearchFilter(ctx, "aloe")

	state := store.ClearAll(ctx)

	assert.Empty(t, state.Items)
	assert.Equal(t, "Ana", state.ClientName)
	assert.Equal(t, model.TierConsumidor, state.ClientTier)
	assert.Equal(t, "aloe", state.SearchTerm)
}

func TestQuoteStore_SelectAllThenClearAll(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		name string
		seed func(context.Context, *QuoteStore)
	}{
		{
			name: "fresh state",
			seed: func(context.Context, *QuoteStore) {},
		},
		{
			name: "inactive items and a non-catalog code",
			seed: func(ctx context.Context, s *QuoteStore) {
				s.SetQuantity(ctx, "OP", 3)
				s.ToggleActive(ctx, "OP")
				s.ToggleActive(ctx, "AN")
				s.SetQuantity(ctx, "ZZ", 12)
			},
		},
		{
			name: "every product already selected",
			seed: func(ctx context.Context, s *QuoteStore) {
				s.SelectAll(ctx, c)
				s.SetQuantity(ctx, "NS", 1_000_000)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, repo := newMemoryStore(t)
			ctx := context.Background()

			store.SetClientTier(ctx, model.TierConsumidor)
			store.SetClientName(ctx, "Ana")
			store.SetSearchFilter(ctx, "royal")
			tt.seed(ctx, store)

			store.SelectAll(ctx, c)
			state := store.ClearAll(ctx)

			assert.Empty(t, state.Items)
			assert.Equal(t, model.TierConsumidor, state.ClientTier)
			assert.Equal(t, "Ana", state.ClientName)
			assert.Equal(t, "royal", state.SearchTerm)

			persisted, err := repo.Load(ctx, store.Key())
			require.NoError(t, err)
			require.NotNil(t, persisted)
			assert.Empty(t, persisted.Items)
			assert.Equal(t, "Ana", persisted.ClientName)
		})
	}
}

func TestQuoteStore_PersistsAfterRequestCancel(t *testing.T) {
	store, repo := newMemoryStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store.SetQuantity(ctx, "OP", 2)

	persisted, err := repo.Load(context.Background(), store.Key())
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, model.QuoteItem{Quantity: 2, Active: true}, persisted.Items["OP"])
}

func TestQuoteStore_ClientFields(t *testing.T) {
	store, _ := newMemoryStore(t)
	ctx := context.Background()

	state := store.SetClientTier(ctx, model.ClientTier("mayorista"))
	assert.Equal(t, model.ClientTier("mayorista"), state.ClientTier)

	state = store.SetClientName(ctx, "  Ana  ")
	assert.Equal(t, "  Ana  ", state.ClientName)

	state = store.SetSearchFilter(ctx, "OP")
	assert.Equal(t, "OP", state.SearchTerm)
}

func TestQuoteStore_PersistsEveryMutation(t *testing.T) {
	store, repo := newMemoryStore(t)
	ctx := context.Background()

	store.SetQuantity(ctx, "OP", 2)
	store.SetClientName(ctx, "Ana López")

	data, ok := repo.Raw(DefaultStateKey)
	require.True(t, ok)
	assert.JSONEq(t,
		`{"items":{"OP":{"quantity":2,"active":true}},"clientType":"inversionista","clientName":"Ana López","searchTerm":""}`,
		string(data))

	restored := NewQuoteStore(repo, "")
	state := restored.Load(ctx)
	assert.Equal(t, store.Snapshot(), state)
}

func TestQuoteStore_Load(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		expected model.QuoteState
	}{
		{
			name:     "missing state starts fresh",
			expected: model.NewQuoteState(),
		},
		{
			name:     "corrupt blob starts fresh",
			raw:      []byte("{not json"),
			expected: model.NewQuoteState(),
		},
		{
			name: "partial blob gets defaults",
			raw:  []byte(`{"clientName":"Ana"}`),
			expected: model.QuoteState{
				Items:      map[string]model.QuoteItem{},
				ClientTier: model.TierInversionista,
				ClientName: "Ana",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMemoryQuoteStateRepository()
			if tt.raw != nil {
				repo.PutRaw(DefaultStateKey, tt.raw)
			}
			store := NewQuoteStore(repo, "")

			assert.Equal(t, tt.expected, store.Load(context.Background()))
		})
	}
}

func TestQuoteStore_LoadError(t *testing.T) {
	repo := new(mocks.MockQuoteStateRepositoryInterface)
	repo.On("Load", mock.Anything, DefaultStateKey).Return(nil, errors.New("connection refused"))

	store := NewQuoteStore(repo, "")
	state := store.Load(context.Background())

	assert.Equal(t, model.NewQuoteState(), state)
	repo.AssertExpectations(t)
}

func TestQuoteStore_SaveFailureKeepsMutation(t *testing.T) {
	repo := new(mocks.MockQuoteStateRepositoryInterface)
	repo.On("Save", mock.Anything, DefaultStateKey, mock.AnythingOfType("model.QuoteState")).
		Return(errors.New("disk full"))

	store := NewQuoteStore(repo, "")
	item := store.SetQuantity(context.Background(), "OP", 3)

	assert.Equal(t, model.QuoteItem{Quantity: 3, Active: true}, item)
	assert.Equal(t, 3, store.Snapshot().Items["OP"].Quantity)
	assert.Error(t, store.Save(context.Background()))
	repo.AssertNumberOfCalls(t, "Save", 2)
}

func TestQuoteStore_SnapshotIsDetached(t *testing.T) {
	store := NewQuoteStore(nil, "")
	store.SetQuantity(context.Background(), "OP", 1)

	snap := store.Snapshot()
	snap.Items["OP"] = model.QuoteItem{Quantity: 99}

	assert.Equal(t, 1, store.Snapshot().Items["OP"].Quantity)
}

func TestQuoteStore_ConcurrentMutations(t *testing.T) {
	store, _ := newMemoryStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.ToggleActive(ctx, "OP")
		}()
	}
	wg.Wait()

	assert.False(t, store.Snapshot().Items["OP"].Active, "even number of toggles")
}
