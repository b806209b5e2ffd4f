package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteItem_Included(t *testing.T) {
	assert.True(t, QuoteItem{Quantity: 1, Active: true}.Included())
	assert.False(t, QuoteItem{Quantity: 0, Active: true}.Included())
	assert.False(t, QuoteItem{Quantity: 3, Active: false}.Included())
}

func TestNewQuoteState(t *testing.T) {
	s := NewQuoteState()
	assert.NotNil(t, s.Items)
	assert.Empty(t, s.Items)
	assert.Equal(t, TierInversionista, s.ClientTier)
	assert.Empty(t, s.ClientName)
	assert.Empty(t, s.SearchTerm)
}

func TestQuoteState_Clone(t *testing.T) {
	s := NewQuoteState()
	s.Items["OP"] = QuoteItem{Quantity: 2, Active: true}

	c := s.Clone()
	c.Items["OP"] = QuoteItem{Quantity: 9}
	c.Items["NS"] = QuoteItem{Quantity: 1, Active: true}

	assert.Equal(t, QuoteItem{Quantity: 2, Active: true}, s.Items["OP"])
	assert.NotContains(t, s.Items, "NS")
}

func TestEncodeDecodeQuoteState(t *testing.T) {
	s := QuoteState{
		Items:      map[string]QuoteItem{"OP": {Quantity: 2, Active: true}},
		ClientTier: TierConsumidor,
		ClientName: "Ana López",
		SearchTerm: "op",
	}

	data, err := EncodeQuoteState(s)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"items":{"OP":{"quantity":2,"active":true}},"clientType":"consumidor","clientName":"Ana López","searchTerm":"op"}`,
		string(data))

	decoded, err := DecodeQuoteState(data)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestDecodeQuoteState(t *testing.T) {
	tests := []struct {
		name      string
		blob      string
		expectErr bool
		validate  func(*testing.T, QuoteState)
	}{
		{
			name: "missing fields get defaults",
			blob: `{"clientName":"Luis"}`,
			validate: func(t *testing.T, s QuoteState) {
				assert.NotNil(t, s.Items)
				assert.Equal(t, TierInversionista, s.ClientTier)
				assert.Equal(t, "Luis", s.ClientName)
			},
		},
		{
			name: "unknown tier is kept",
			blob: `{"items":{},"clientType":"mayorista"}`,
			validate: func(t *testing.T, s QuoteState) {
				assert.Equal(t, ClientTier("mayorista"), s.ClientTier)
			},
		},
		{
			name:      "malformed json",
			blob:      `{"items":`,
			expectErr: true,
		},
		{
			name:      "wrong value type",
			blob:      `{"items":{"OP":{"quantity":"two"}}}`,
			expectErr: true,
		},
		{
			name:      "not an object",
			blob:      `[1,2]`,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodeQuoteState([]byte(tt.blob))
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, s)
		})
	}
}
