package render

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/innovation-consortium/billing-backend/internal/domain/billing"
	"github.com/innovation-consortium/billing-backend/internal/domain/shared/valueobject"
)

// TotalRow is one computed totals line: a label and a money value
type TotalRow struct {
	Label string
	Value valueobject.Money
}

// Aggregator computes the totals block for a billing record. The VAT rate
// is deployment policy, injected from config.
type Aggregator struct {
	vatRate decimal.Decimal
}

// NewAggregator creates an Aggregator with the given VAT rate (e.g. 0.18)
func NewAggregator(vatRate decimal.Decimal) *Aggregator {
	return &Aggregator{vatRate: vatRate}
}

// vatLabel renders the rate as a percentage label, e.g. "VAT(18%)"
func (a *Aggregator) vatLabel() string {
	pct := a.vatRate.Mul(decimal.NewFromInt(100))
	return fmt.Sprintf("VAT(%s%%)", pct.String())
}

// money wraps a decimal amount in the default deployment currency
func money(d decimal.Decimal) valueobject.Money {
	return valueobject.NewMoney(d, valueobject.DefaultCurrency)
}

// Compute produces the ordered totals rows for the record. General-category
// records carry a multi-stage cost build-up in their line items and get
// per-field sums; every other category gets the amount/VAT/grand-total
// ladder. Precomputed store totals are shown verbatim when present.
func (a *Aggregator) Compute(record *billing.BillingRecord) []TotalRow {
	if record.EffectiveCategory().UsesCostBuildUp() {
		return []TotalRow{
			{Label: "Consumables", Value: money(record.SumItems("consumables"))},
			{Label: "Labour", Value: money(record.SumItems("labour"))},
			{Label: "Sub-Total 2", Value: money(record.SumItems("subTotal2"))},
			{Label: "VAT", Value: money(record.SumItems("vat"))},
			{Label: "Grand Total", Value: money(record.SumItems("grandTotal"))},
		}
	}

	total := money(record.SumItems("amount"))
	if record.TotalAmount != nil {
		total = valueobject.NewMoneyFromFloat(*record.TotalAmount)
	}
	vat := total.MulRate(a.vatRate)
	// Both operands carry the default currency
	grand, _ := total.Add(vat)
	if record.GrandTotal != nil {
		grand = valueobject.NewMoneyFromFloat(*record.GrandTotal)
	}

	return []TotalRow{
		{Label: "Total Amount", Value: total},
		{Label: a.vatLabel(), Value: vat},
		{Label: "Grand Total", Value: grand},
	}
}

// GrandTotal returns the final payable amount, i.e. the last totals row
func (a *Aggregator) GrandTotal(record *billing.BillingRecord) valueobject.Money {
	rows := a.Compute(record)
	return rows[len(rows)-1].Value
}

// Rows expands totals into grid rows of the given width: label in the first
// column, value in the last, blanks between.
func Rows(totals []TotalRow, columnCount int) [][]string {
	out := make([][]string, 0, len(totals))
	for _, t := range totals {
		row := make([]string, columnCount)
		row[0] = t.Label
		row[columnCount-1] = t.Value.StringFixed()
		out = append(out, row)
	}
	return out
}
