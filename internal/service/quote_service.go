package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guttosm/quote-service/internal/clipboard"
	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/metrics"
	"github.com/guttosm/quote-service/internal/service/cache"
)

// QuoteService is the entry point of the HTTP layer into the quote engine.
type QuoteService interface {
	Catalog() model.Catalog
	State() model.QuoteState
	Lines() []model.QuoteLine
	Totals() model.Totals
	ProductRows(term string) []model.ProductRow
	UnitPrice(code string, tier model.ClientTier) (decimal.Decimal, error)

	SetQuantity(ctx context.Context, code string, qty float64) (model.QuoteItem, error)
	ToggleActive(ctx context.Context, code string) (model.QuoteItem, error)
	SelectAll(ctx context.Context) model.QuoteState
	ClearAll(ctx context.Context) model.QuoteState
	SetClientTier(ctx context.Context, tier model.ClientTier) model.QuoteState
	SetClientName(ctx context.Context, name string) model.QuoteState
	SetSearchFilter(ctx context.Context, term string) model.QuoteState

	QuoteText() string
	CopyQuote(ctx context.Context) (text string, copied bool)
	ExportCSV(now time.Time) (filename string, data []byte, err error)

	// InvalidateCache drops every cached totals entry.
	InvalidateCache()
}

// Option configures a QuoteServiceImpl.
type Option func(*QuoteServiceImpl)

// QuoteServiceImpl implements QuoteService on top of a QuoteStore.
type QuoteServiceImpl struct {
	catalog   model.Catalog
	store     *QuoteStore
	clipboard clipboard.Writer
	cache     cache.Cache
}

// NewQuoteService creates the service. The clipboard defaults to clipboard.Discard.
func NewQuoteService(catalog model.Catalog, store *QuoteStore, opts ...Option) *QuoteServiceImpl {
	s := &QuoteServiceImpl{
		catalog:   catalog,
		store:     store,
		clipboard: clipboard.Discard{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithClipboard sets the clipboard used by CopyQuote.
func WithClipboard(w clipboard.Writer) Option {
	return func(s *QuoteServiceImpl) {
		if w != nil {
			s.clipboard = w
		}
	}
}

// WithTotalsCache caches totals per state fingerprint.
func WithTotalsCache(capacity int, ttl time.Duration) Option {
	return func(s *QuoteServiceImpl) {
		if capacity > 0 && ttl > 0 {
			s.cache = newTotalsCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *QuoteServiceImpl) {
		s.cache = c
	}
}

func (s *QuoteServiceImpl) Catalog() model.Catalog {
	return s.catalog
}

func (s *QuoteServiceImpl) State() model.QuoteState {
	return s.store.Snapshot()
}

func (s *QuoteServiceImpl) Lines() []model.QuoteLine {
	return ActiveLines(s.catalog, s.store.Snapshot())
}

// Totals returns the aggregate of the current state, from cache when possible.
func (s *QuoteServiceImpl) Totals() model.Totals {
	state := s.store.Snapshot()
	if s.cache == nil {
		return ComputeTotals(s.catalog, state)
	}

	key, ok := Fingerprint(state)
	if !ok {
		return ComputeTotals(s.catalog, state)
	}
	if totals, hit := s.cache.Get(key); hit {
		return totals
	}
	totals := ComputeTotals(s.catalog, state)
	s.cache.Set(key, totals)
	return totals
}

// ProductRows lists the catalog for the current tier. An empty term falls
// back to the stored search filter.
func (s *QuoteServiceImpl) ProductRows(term string) []model.ProductRow {
	state := s.store.Snapshot()
	if term == "" {
		term = state.SearchTerm
	}
	return ProductRows(s.catalog, state, term)
}

func (s *QuoteServiceImpl) UnitPrice(code string, tier model.ClientTier) (decimal.Decimal, error) {
	return UnitPriceFor(s.catalog, code, tier)
}

func (s *QuoteServiceImpl) SetQuantity(ctx context.Context, code string, qty float64) (model.QuoteItem, error) {
	if _, ok := s.catalog.Lookup(code); !ok {
		return model.QuoteItem{}, ErrProductNotFound
	}
	return s.store.SetQuantity(ctx, code, qty), nil
}

func (s *QuoteServiceImpl) ToggleActive(ctx context.Context, code string) (model.QuoteItem, error) {
	if _, ok := s.catalog.Lookup(code); !ok {
		return model.QuoteItem{}, ErrProductNotFound
	}
	return s.store.ToggleActive(ctx, code), nil
}

func (s *QuoteServiceImpl) SelectAll(ctx context.Context) model.QuoteState {
	return s.store.SelectAll(ctx, s.catalog)
}

func (s *QuoteServiceImpl) ClearAll(ctx context.Context) model.QuoteState {
	return s.store.ClearAll(ctx)
}

func (s *QuoteServiceImpl) SetClientTier(ctx context.Context, tier model.ClientTier) model.QuoteState {
	if !tier.Known() {
		log.Warn().Str("tier", string(tier)).Msg("Unknown client tier, pricing as publico")
	}
	return s.store.SetClientTier(ctx, tier)
}

func (s *QuoteServiceImpl) SetClientName(ctx context.Context, name string) model.QuoteState {
	return s.store.SetClientName(ctx, name)
}

func (s *QuoteServiceImpl) SetSearchFilter(ctx context.Context, term string) model.QuoteState {
	return s.store.SetSearchFilter(ctx, term)
}

func (s *QuoteServiceImpl) QuoteText() string {
	text := QuoteText(s.catalog, s.store.Snapshot())
	metrics.RecordExport("text", "success")
	return text
}

// CopyQuote renders the text summary and hands it to the clipboard. A
// clipboard failure is logged and reported through copied.
func (s *QuoteServiceImpl) CopyQuote(ctx context.Context) (string, bool) {
	text := QuoteText(s.catalog, s.store.Snapshot())
	if err := s.clipboard.WriteText(ctx, text); err != nil {
		metrics.RecordExport("clipboard", "error")
		log.Warn().Err(err).Msg("Failed to copy quote to clipboard")
		return text, false
	}
	metrics.RecordExport("clipboard", "success")
	return text, true
}

// ExportCSV renders the CSV document and its download filename.
func (s *QuoteServiceImpl) ExportCSV(now time.Time) (string, []byte, error) {
	state := s.store.Snapshot()
	data, err := ExportCSV(s.catalog, state, now)
	if err != nil {
		metrics.RecordExport("csv", "error")
		return "", nil, err
	}
	metrics.RecordExport("csv", "success")
	return ExportFilename(state.ClientName, now), data, nil
}

// InvalidateCache drops every cached totals entry.
func (s *QuoteServiceImpl) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Close stops the totals cache cleanup goroutine.
func (s *QuoteServiceImpl) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}
