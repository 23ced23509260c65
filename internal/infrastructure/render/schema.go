package render

import (
	"github.com/innovation-consortium/billing-backend/internal/domain/billing"
)

// columnKind selects how a cell value is extracted and formatted
type columnKind int

const (
	columnText   columnKind = iota // string field, defaulted when absent
	columnNumber                   // numeric field, formatted to 2 decimal places
)

// Column describes one table column: its header, its relative width weight
// and the line-item field it renders.
type Column struct {
	Header string
	Weight float64
	Field  string
	Kind   columnKind
}

// Extract renders the column's cell text for one line item. textDefault
// fills absent string fields; absent numerics read as zero.
func (c Column) Extract(item billing.LineItem, textDefault string) string {
	if c.Kind == columnNumber {
		return item.Amount(c.Field).StringFixed(2)
	}
	return item.Text(c.Field, textDefault)
}

// ColumnSchema is the ordered column set for one table
type ColumnSchema struct {
	Columns []Column
}

// Headers returns the header row texts in column order
func (s ColumnSchema) Headers() []string {
	headers := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		headers[i] = c.Header
	}
	return headers
}

// Weights returns the relative width weights in column order
func (s ColumnSchema) Weights() []float64 {
	weights := make([]float64, len(s.Columns))
	for i, c := range s.Columns {
		weights[i] = c.Weight
	}
	return weights
}

// Row renders one line item into cell texts in column order
func (s ColumnSchema) Row(item billing.LineItem, textDefault string) []string {
	row := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		row[i] = c.Extract(item, textDefault)
	}
	return row
}

// genericSchema covers volume categories (Supply, Machining, General) and
// any unrecognized tag.
var genericSchema = ColumnSchema{Columns: []Column{
	{Header: "Number", Weight: 1, Field: "name", Kind: columnText},
	{Header: "Description", Weight: 3, Field: "description", Kind: columnText},
	{Header: "Quantity", Weight: 1, Field: "quantity", Kind: columnNumber},
	{Header: "Rate", Weight: 1, Field: "rate", Kind: columnNumber},
	{Header: "Amount", Weight: 1, Field: "amount", Kind: columnNumber},
}}

// laborSchema covers categories billed by workers, days and hours.
var laborSchema = ColumnSchema{Columns: []Column{
	{Header: "Number", Weight: 1, Field: "name", Kind: columnText},
	{Header: "Description", Weight: 3, Field: "description", Kind: columnText},
	{Header: "Workers", Weight: 1, Field: "numberOfWorkers", Kind: columnNumber},
	{Header: "Days", Weight: 1, Field: "numberOfDays", Kind: columnNumber},
	{Header: "Hours/Day", Weight: 1, Field: "hoursInDay", Kind: columnNumber},
	{Header: "Rate", Weight: 1, Field: "rate", Kind: columnNumber},
	{Header: "Amount", Weight: 1, Field: "amount", Kind: columnNumber},
}}

// summarySchema is the fixed condensed schema for cost summaries,
// independent of the record's category.
var summarySchema = ColumnSchema{Columns: []Column{
	{Header: "Number", Weight: 1, Field: "name", Kind: columnText},
	{Header: "Description", Weight: 3, Field: "description", Kind: columnText},
	{Header: "Quantity", Weight: 1, Field: "quantity", Kind: columnNumber},
	{Header: "Total Investment", Weight: 1.5, Field: "totalInvestment", Kind: columnNumber},
	{Header: "Profit", Weight: 1, Field: "profit", Kind: columnNumber},
	{Header: "Rate", Weight: 1, Field: "rate", Kind: columnNumber},
	{Header: "Amount", Weight: 1, Field: "amount", Kind: columnNumber},
}}

// schemaByCategory is the fixed resolution table. Categories not listed
// here resolve to the generic schema.
var schemaByCategory = map[billing.Category]ColumnSchema{
	billing.CategorySupply:        genericSchema,
	billing.CategoryMachining:     genericSchema,
	billing.CategoryGeneral:       genericSchema,
	billing.CategoryUncategorized: genericSchema,
	billing.CategoryMaintenance:   laborSchema,
	billing.CategoryFabrication:   laborSchema,
	billing.CategoryInstallation:  laborSchema,
	billing.CategoryDesigning:     laborSchema,
}

// ResolveSchema maps a category tag to its column schema. Unknown tags get
// the generic schema, so resolution never fails and repeated lookups of the
// same tag always agree.
func ResolveSchema(category billing.Category) ColumnSchema {
	if s, ok := schemaByCategory[category]; ok {
		return s
	}
	return genericSchema
}

// SummarySchema returns the fixed schema used by the summary document profile
func SummarySchema() ColumnSchema {
	return summarySchema
}
