package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(code, name, price, points string) Product {
	return Product{
		Code:        code,
		Name:        name,
		PricePublic: decimal.RequireFromString(price),
		Points:      decimal.RequireFromString(points),
	}
}

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name      string
		products  []Product
		expectErr error
		validate  func(*testing.T, Catalog)
	}{
		{
			name: "keeps order",
			products: []Product{
				product("OP", "OPC 95 PLUS", "490", "19.4"),
				product("AN", "ALOE NECTAR", "424", "15.5"),
			},
			validate: func(t *testing.T, c Catalog) {
				assert.Equal(t, 2, c.Len())
				ps := c.Products()
				assert.Equal(t, "OP", ps[0].Code)
				assert.Equal(t, "AN", ps[1].Code)
			},
		},
		{
			name: "duplicate code",
			products: []Product{
				product("OP", "A", "1", "1"),
				product("OP", "B", "2", "2"),
			},
			expectErr: ErrDuplicateProduct,
		},
		{
			name:      "empty code",
			products:  []Product{product(" ", "A", "1", "1")},
			expectErr: ErrInvalidProduct,
		},
		{
			name:      "negative price",
			products:  []Product{product("X", "A", "-1", "1")},
			expectErr: ErrInvalidProduct,
		},
		{
			name:      "negative points",
			products:  []Product{product("X", "A", "1", "-0.5")},
			expectErr: ErrInvalidProduct,
		},
		{
			name: "empty catalog",
			validate: func(t *testing.T, c Catalog) {
				assert.Zero(t, c.Len())
				assert.Empty(t, c.Filter(""))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.products)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			tt.validate(t, c)
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := NewCatalog([]Product{product("NS", "NUTRASANA", "1790", "60")})
	require.NoError(t, err)

	p, ok := c.Lookup("NS")
	assert.True(t, ok)
	assert.Equal(t, "NUTRASANA", p.Name)

	_, ok = c.Lookup("ns")
	assert.False(t, ok, "codes are case sensitive")
}

func TestCatalog_ProductsIsCopy(t *testing.T) {
	c, err := NewCatalog([]Product{product("OP", "OPC 95 PLUS", "490", "19.4")})
	require.NoError(t, err)

	ps := c.Products()
	ps[0].Name = "changed"

	p, _ := c.Lookup("OP")
	assert.Equal(t, "OPC 95 PLUS", p.Name)
}

func TestCatalog_Filter(t *testing.T) {
	c, err := NewCatalog([]Product{
		product("OP", "OPC 95 PLUS", "490", "19.4"),
		product("RH", "ROYAL HONEY", "334", "10.5"),
		product("RG", "ROYAL GEL", "504", "18.1"),
		product("NS", "NUTRASANA", "1790", "60"),
	})
	require.NoError(t, err)

	codes := func(ps []Product) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Code)
		}
		return out
	}

	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{"empty term", "", []string{"OP", "RH", "RG", "NS"}},
		{"by name case insensitive", "royal", []string{"RH", "RG"}},
		{"by code", "ns", []string{"NS"}},
		{"substring inside name", "sana", []string{"NS"}},
		{"no match", "xyz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codes(c.Filter(tt.term)))
		})
	}
}
