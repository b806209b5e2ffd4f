package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/metrics"
)

// ActiveLines prices every included item of state, in catalog order.
// Items whose code is not in the catalog are skipped.
func ActiveLines(catalog model.Catalog, state model.QuoteState) []model.QuoteLine {
	products := catalog.Products()
	lines := make([]model.QuoteLine, 0, len(state.Items))
	for _, p := range products {
		item, ok := state.Items[p.Code]
		if !ok || !item.Included() {
			continue
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		unit := UnitPrice(p, state.ClientTier)
		lines = append(lines, model.QuoteLine{
			Code:      p.Code,
			Name:      p.Name,
			Quantity:  item.Quantity,
			UnitPrice: unit,
			Subtotal:  unit.Mul(qty),
			Points:    p.Points.Mul(qty),
		})
	}
	return lines
}

// SumLines aggregates lines without any rounding.
func SumLines(lines []model.QuoteLine) model.Totals {
	totals := model.Totals{
		Total:  decimal.Zero,
		Points: decimal.Zero,
	}
	for _, l := range lines {
		totals.Total = totals.Total.Add(l.Subtotal)
		totals.Points = totals.Points.Add(l.Points)
		totals.ActiveProducts++
		totals.TotalPieces += l.Quantity
	}
	return totals
}

// ComputeTotals aggregates the included items of state.
func ComputeTotals(catalog model.Catalog, state model.QuoteState) model.Totals {
	start := time.Now()
	totals := SumLines(ActiveLines(catalog, state))
	metrics.RecordTotalsComputation(time.Since(start))
	return totals
}

const pointsRowPlaces = 1

// ProductRows builds the catalog listing for the products matching term.
func ProductRows(catalog model.Catalog, state model.QuoteState, term string) []model.ProductRow {
	products := catalog.Filter(term)
	rows := make([]model.ProductRow, 0, len(products))
	for _, p := range products {
		item := state.Items[p.Code]
		qty := decimal.NewFromInt(int64(item.Quantity))
		unit := UnitPrice(p, state.ClientTier)
		rows = append(rows, model.ProductRow{
			Code:            p.Code,
			Name:            p.Name,
			PricePublic:     p.PricePublic,
			UnitPrice:       unit,
			DiscountPercent: state.ClientTier.DisplayDiscountPercent(),
			Quantity:        item.Quantity,
			Active:          item.Active,
			Subtotal:        unit.Mul(qty),
			PointsTotal:     p.Points.Mul(qty).Round(pointsRowPlaces),
		})
	}
	return rows
}
