// Package repository provides persistence for the quote state and audit logs.
package repository

import (
	"context"
	"errors"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// ErrCorruptState is returned when a stored quote state cannot be decoded.
var ErrCorruptState = errors.New("corrupt quote state")

// QuoteStateRepositoryInterface loads and saves the quote state under a key.
// Load returns (nil, nil) when nothing is stored under key.
type QuoteStateRepositoryInterface interface {
	Load(ctx context.Context, key string) (*model.QuoteState, error)
	Save(ctx context.Context, key string, state model.QuoteState) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
