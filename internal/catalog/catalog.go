// Package catalog provides the product catalog: the built-in product list
// and an optional YAML override file.
package catalog

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/guttosm/quote-service/internal/domain/model"
)

type entry struct {
	code, name, price, points string
}

var builtin = []entry{
	{"OP", "OPC 95 PLUS", "490", "19.4"},
	{"C3", "CURCUMIN", "490", "19.4"},
	{"AN", "ALOE NECTAR", "424", "15.5"},
	{"HI", "ACTIVADOR", "208", "7.33"},
	{"RH", "ROYAL HONEY", "334", "10.5"},
	{"LP", "LACTOSPORE", "458", "18.1"},
	{"RG", "ROYAL GEL", "504", "18.1"},
	{"MS", "MSM", "490", "19.4"},
	{"SS", "SELECT SLIM", "514", "20.25"},
	{"TN", "TOTAL NUTRITION", "564", "20.25"},
	{"FL", "FORS LEAN", "514", "20.25"},
	{"V2", "V-24", "670", "20.25"},
	{"NS", "NUTRASANA", "1790", "60"},
	{"SA", "STRESANA", "490", "19.4"},
}

// Default returns the built-in catalog.
func Default() model.Catalog {
	products := make([]model.Product, 0, len(builtin))
	for _, e := range builtin {
		products = append(products, model.Product{
			Code:        e.code,
			Name:        e.name,
			PricePublic: decimal.RequireFromString(e.price),
			Points:      decimal.RequireFromString(e.points),
		})
	}
	c, err := model.NewCatalog(products)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

// File is the YAML layout of a catalog file.
//
//	products:
//	  - code: OP
//	    name: OPC 95 PLUS
//	    price_public: 490
//	    points: 19.4
type File struct {
	Products []FileProduct `yaml:"products"`
}

// FileProduct is one product in a catalog file. Amounts are read as text so
// that 19.4 stays exactly 19.4.
type FileProduct struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	PricePublic string `yaml:"price_public"`
	Points      string `yaml:"points"`
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (model.Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return model.Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Products) == 0 {
		return model.Catalog{}, fmt.Errorf("parse catalog: no products")
	}

	products := make([]model.Product, 0, len(f.Products))
	for i, fp := range f.Products {
		price, err := decimal.NewFromString(fp.PricePublic)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("parse catalog: product %d (%s) price: %w", i, fp.Code, err)
		}
		points, err := decimal.NewFromString(fp.Points)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("parse catalog: product %d (%s) points: %w", i, fp.Code, err)
		}
		products = append(products, model.Product{
			Code:        fp.Code,
			Name:        fp.Name,
			PricePublic: price,
			Points:      points,
		})
	}

	c, err := model.NewCatalog(products)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	return c, nil
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Load returns the catalog from path, or the built-in one when path is empty.
func Load(path string) (model.Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
