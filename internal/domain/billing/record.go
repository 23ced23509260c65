package billing

import (
	"github.com/shopspring/decimal"
)

// LineItem is one row of a billing record. Records arrive from the document
// store with a field set that varies by category, so items stay schemaless
// and typed access goes through Amount/Text.
type LineItem map[string]any

// Amount reads a numeric field from the item. Absent or non-numeric values
// read as zero; string values are parsed when possible.
func (li LineItem) Amount(field string) decimal.Decimal {
	v, ok := li[field]
	if !ok || v == nil {
		return decimal.Zero
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat(float64(n))
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero
		}
		return d
	case decimal.Decimal:
		return n
	}
	return decimal.Zero
}

// Text reads a string field from the item, returning fallback when the field
// is absent, nil or empty.
func (li LineItem) Text(field, fallback string) string {
	v, ok := li[field]
	if !ok || v == nil {
		return fallback
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return fallback
	}
	return s
}

// Has reports whether the field is present with a non-nil value.
func (li LineItem) Has(field string) bool {
	v, ok := li[field]
	return ok && v != nil
}

// BillingRecord is a stored invoice or cost summary as fetched from the
// record store. Optional fields are pointers so precomputed totals can be
// told apart from absent ones.
type BillingRecord struct {
	ID            string
	Kind          DocumentKind
	Category      Category
	ClientName    string
	ClientAddress string
	ClientEmail   string
	// Date is a display string; it is never parsed or validated
	Date  string
	Items []LineItem

	// Precomputed totals from the store. When present they are shown
	// verbatim instead of being recomputed.
	TotalAmount *float64
	GrandTotal  *float64
}

// EffectiveCategory returns the record's category, falling back to
// Uncategorized for empty or unknown tags.
func (r *BillingRecord) EffectiveCategory() Category {
	if r.Category == "" || !r.Category.IsValid() {
		return CategoryUncategorized
	}
	return r.Category
}

// SumItems adds the named field across all line items. Missing fields
// contribute zero, so an empty item slice yields zero.
func (r *BillingRecord) SumItems(field string) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range r.Items {
		sum = sum.Add(item.Amount(field))
	}
	return sum
}
