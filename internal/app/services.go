// Package app provides service initialization.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/catalog"
	"github.com/guttosm/quote-service/internal/clipboard"
	"github.com/guttosm/quote-service/internal/repository"
	"github.com/guttosm/quote-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Store        *service.QuoteStore
	QuoteService *service.QuoteServiceImpl
}

// InitializeServices loads the catalog and the persisted quote state and
// builds the quote service on top of repo.
func InitializeServices(ctx context.Context, cfg config.QuoteConfig, repo repository.QuoteStateRepositoryInterface) (*ServiceComponents, error) {
	products, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if cfg.CatalogFile != "" {
		log.Info().Str("file", cfg.CatalogFile).Int("products", products.Len()).Msg("Loaded catalog file")
	}

	store := service.NewQuoteStore(repo, cfg.StateKey)
	state := store.Load(ctx)
	log.Info().
		Str("state_key", store.Key()).
		Int("items", len(state.Items)).
		Str("client_tier", string(state.ClientTier)).
		Msg("Quote state restored")

	var opts []service.Option
	if cfg.ClipboardEnabled {
		opts = append(opts, service.WithClipboard(clipboard.NewSystem()))
	}
	if cfg.TotalsCacheSize > 0 {
		opts = append(opts, service.WithTotalsCache(cfg.TotalsCacheSize, cfg.TotalsCacheTTL))
	}

	return &ServiceComponents{
		Store:        store,
		QuoteService: service.NewQuoteService(products, store, opts...),
	}, nil
}
