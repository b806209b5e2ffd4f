// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/quote-service/internal/domain/model"
)

type MockQuoteStateRepositoryInterface struct {
	mock.Mock
}

func (m *MockQuoteStateRepositoryInterface) Load(ctx context.Context, key string) (*model.QuoteState, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuoteState), args.Error(1)
}

func (m *MockQuoteStateRepositoryInterface) Save(ctx context.Context, key string, state model.QuoteState) error {
	args := m.Called(ctx, key, state)
	return args.Error(0)
}
