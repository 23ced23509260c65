package billing

// Category tags a billing record and selects its column schema and totals
// strategy. Tags outside the known set fall back to the generic schema.
type Category string

const (
	// Volume categories: quantity/rate line items
	CategorySupply    Category = "Supply"
	CategoryMachining Category = "Machining"
	CategoryGeneral   Category = "General"

	// Labor categories: worker/day/hour line items
	CategoryMaintenance  Category = "Maintenance"
	CategoryFabrication  Category = "Fabrication"
	CategoryInstallation Category = "Installation"
	CategoryDesigning    Category = "Designing"

	// CategoryUncategorized is the fallback for records without a tag
	CategoryUncategorized Category = "Uncategorized"
)

// IsValid checks if the Category is a known value
func (c Category) IsValid() bool {
	switch c {
	case CategorySupply, CategoryMachining, CategoryGeneral,
		CategoryMaintenance, CategoryFabrication, CategoryInstallation, CategoryDesigning,
		CategoryUncategorized:
		return true
	}
	return false
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// IsLabor returns true for categories billed as worker/day/hour breakdowns
func (c Category) IsLabor() bool {
	switch c {
	case CategoryMaintenance, CategoryFabrication, CategoryInstallation, CategoryDesigning:
		return true
	}
	return false
}

// UsesCostBuildUp returns true for categories whose line items carry the
// multi-stage cost build-up fields (subtotal, consumables, labour, VAT)
func (c Category) UsesCostBuildUp() bool {
	return c == CategoryGeneral
}

// DisplayName returns the category label shown on rendered documents
func (c Category) DisplayName() string {
	if c == "" {
		return string(CategoryUncategorized)
	}
	return string(c)
}

// AllCategories returns all known Category values
func AllCategories() []Category {
	return []Category{
		CategorySupply, CategoryMachining, CategoryGeneral,
		CategoryMaintenance, CategoryFabrication, CategoryInstallation, CategoryDesigning,
	}
}

// DocumentKind identifies which document a record renders as
type DocumentKind string

const (
	KindInvoice DocumentKind = "INVOICE"
	KindSummary DocumentKind = "SUMMARY"
)

// IsValid checks if the DocumentKind is a valid value
func (k DocumentKind) IsValid() bool {
	return k == KindInvoice || k == KindSummary
}

// String returns the string representation of DocumentKind
func (k DocumentKind) String() string {
	return string(k)
}

// DisplayName returns the human-readable name used in document titles
func (k DocumentKind) DisplayName() string {
	switch k {
	case KindInvoice:
		return "Invoice"
	case KindSummary:
		return "Summary"
	default:
		return string(k)
	}
}

// AllDocumentKinds returns all valid DocumentKind values
func AllDocumentKinds() []DocumentKind {
	return []DocumentKind{KindInvoice, KindSummary}
}
