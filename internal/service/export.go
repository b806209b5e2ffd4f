package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/guttosm/quote-service/internal/domain/model"
)

const (
	quoteHeader       = "=== COTIZACIÓN ADVANCED N. ==="
	unnamedClient     = "Sin especificar"
	unnamedClientFile = "cliente"
	csvDateLayout     = "2/1/2006"
)

var (
	// moneyPrinter is safe for concurrent use; Sprint takes its state from a pool.
	moneyPrinter = message.NewPrinter(language.MustParse("es-MX"))
	whitespace   = regexp.MustCompile(`\s+`)
)

// FormatMoney renders an amount with es-MX grouping and exactly two decimals,
// e.g. 1253 -> "1,253.00". Cents are rounded half away from zero like unit
// prices. Only the whole part goes through the printer, as an int64, so
// amounts stay exact up to 9,223,372,036,854,775,807.
func FormatMoney(d decimal.Decimal) string {
	rounded := d.Round(2)
	abs := rounded.Abs()
	whole := abs.Truncate(0)
	cents := abs.Sub(whole).StringFixed(2)[1:]

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + moneyPrinter.Sprint(number.Decimal(whole.IntPart())) + cents
}

// FormatPoints renders points without trailing zeros, e.g. 38.80 -> "38.8".
func FormatPoints(d decimal.Decimal) string {
	return d.String()
}

func clientDisplayName(name string) string {
	if name == "" {
		return unnamedClient
	}
	return name
}

// QuoteText renders the clipboard summary of state.
func QuoteText(catalog model.Catalog, state model.QuoteState) string {
	lines := ActiveLines(catalog, state)
	totals := SumLines(lines)

	var b strings.Builder
	b.WriteString(quoteHeader + "\n")
	b.WriteString("Cliente: " + clientDisplayName(state.ClientName) + "\n")
	b.WriteString("Tipo de Cliente: " + state.ClientTier.Label() + "\n")
	b.WriteString("\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "%s (%s) x %d = $%s\n", l.Code, l.Name, l.Quantity, FormatMoney(l.Subtotal))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "TOTAL: $%s MXN\n", FormatMoney(totals.Total))
	fmt.Fprintf(&b, "PUNTOS: %s\n", FormatPoints(totals.Points))
	fmt.Fprintf(&b, "PRODUCTOS: %d\n", totals.ActiveProducts)
	fmt.Fprintf(&b, "PIEZAS: %d", totals.TotalPieces)
	return b.String()
}

// ExportCSV renders the CSV document of state dated now. Fields are quoted
// only when they contain a comma, a quote or a line break.
func ExportCSV(catalog model.Catalog, state model.QuoteState, now time.Time) ([]byte, error) {
	lines := ActiveLines(catalog, state)
	totals := SumLines(lines)

	records := make([][]string, 0, len(lines)+10)
	records = append(records,
		[]string{"Cliente", clientDisplayName(state.ClientName)},
		[]string{"Tipo de Cliente", state.ClientTier.Label()},
		[]string{"Fecha", now.Format(csvDateLayout)},
		[]string{""},
		[]string{"Código", "Nombre", "Cantidad", "Precio Unitario", "Subtotal", "Puntos"},
	)
	for _, l := range lines {
		records = append(records, []string{
			l.Code,
			l.Name,
			strconv.Itoa(l.Quantity),
			l.UnitPrice.StringFixed(2),
			l.Subtotal.StringFixed(2),
			FormatPoints(l.Points),
		})
	}
	records = append(records,
		[]string{""},
		[]string{"TOTAL", "", "", "", "$" + totals.Total.StringFixed(2), FormatPoints(totals.Points)},
		[]string{"PRODUCTOS ACTIVOS", "", "", "", strconv.Itoa(totals.ActiveProducts), ""},
		[]string{"PIEZAS TOTALES", "", "", "", strconv.Itoa(totals.TotalPieces), ""},
	)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportFilename returns the download name for a CSV export:
// cotizacion-<client name with whitespace runs replaced by "-">-<unix millis>.csv.
func ExportFilename(clientName string, now time.Time) string {
	name := unnamedClientFile
	if clientName != "" {
		name = whitespace.ReplaceAllString(clientName, "-")
	}
	return fmt.Sprintf("cotizacion-%s-%d.csv", name, now.UnixMilli())
}
