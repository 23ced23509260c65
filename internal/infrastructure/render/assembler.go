package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/innovation-consortium/billing-backend/internal/domain/billing"
)

// OrgIdentity is the issuing organization's letterhead block
type OrgIdentity struct {
	Name     string
	Tagline  string
	Location string
	Email    string
	Phone    string
}

// profile is the per-document-kind rendering policy. Invoice and summary
// share one assembly pipeline and differ only in these knobs.
type profile struct {
	orientation   string
	textDefault   string
	idLabel       string
	withSignature bool
	closingLines  []string
	schemaFor     func(*billing.BillingRecord) ColumnSchema
}

var invoiceProfile = profile{
	orientation:   "L",
	textDefault:   "N/A",
	idLabel:       "Invoice ID",
	withSignature: true,
	closingLines: []string{
		"All payments are due within 30 days of the invoice date.",
		"Cheques are payable to the organization named above.",
	},
	schemaFor: func(r *billing.BillingRecord) ColumnSchema {
		return ResolveSchema(r.EffectiveCategory())
	},
}

var summaryProfile = profile{
	orientation:   "P",
	textDefault:   "Unknown",
	idLabel:       "Summary ID",
	withSignature: false,
	closingLines:  []string{"Thank you for using our services."},
	schemaFor: func(*billing.BillingRecord) ColumnSchema {
		return SummarySchema()
	},
}

// Assembler turns a billing record into a laid-out Document. It is
// stateless across calls; every render gets its own document and cursor.
type Assembler struct {
	org           OrgIdentity
	assets        AssetStore
	aggregator    *Aggregator
	currencyUnit  string
	logoName      string
	signatureName string
}

// NewAssembler wires an Assembler. logoName and signatureName are asset
// file names and may be empty to omit the block.
func NewAssembler(org OrgIdentity, assets AssetStore, aggregator *Aggregator,
	currencyUnit, logoName, signatureName string) *Assembler {
	return &Assembler{
		org:           org,
		assets:        assets,
		aggregator:    aggregator,
		currencyUnit:  currencyUnit,
		logoName:      logoName,
		signatureName: signatureName,
	}
}

// Assemble lays the record out as the given document kind. Any block
// failure aborts the whole render; there is no partial output.
func (a *Assembler) Assemble(record *billing.BillingRecord, kind billing.DocumentKind) (*Document, error) {
	p := invoiceProfile
	if kind == billing.KindSummary {
		p = summaryProfile
	}

	title := fmt.Sprintf("%s %s", kind.DisplayName(), record.ID)
	doc := NewDocument(title, p.orientation)
	cur := newCursor(doc)

	if err := a.headerBlock(cur, kind); err != nil {
		return nil, err
	}
	a.metadataBlock(cur, record, p)
	if err := a.tableBlock(cur, record, p); err != nil {
		return nil, err
	}
	a.wordsBlock(cur, record)
	a.closingBlock(cur, p)

	return doc, nil
}

// headerBlock draws the letterhead: optional logo, organization identity
// and the document title. A configured logo that cannot be resolved is
// fatal; a record must not go out with a broken letterhead.
func (a *Assembler) headerBlock(cur *cursor, kind billing.DocumentKind) error {
	if a.logoName != "" {
		logo, err := a.assets.Resolve(a.logoName)
		if err != nil {
			return NewRenderError(ErrCodeAssetMissing, "logo asset unavailable", err)
		}
		cur.drawImage(logo.Path, logo.Format,
			cur.doc.Width-cur.doc.Margin-80, cur.doc.Margin, 80, 60)
	}

	cur.drawTextLine(a.org.Name, fontTitle, 22)
	if a.org.Tagline != "" {
		cur.drawTextLine(a.org.Tagline, fontBody, 14)
	}
	cur.drawTextLine(a.org.Location, fontBody, 14)
	cur.drawTextLine(fmt.Sprintf("%s | %s", a.org.Email, a.org.Phone), fontBody, 14)
	cur.advance(6)
	cur.drawTextLine(strings.ToUpper(kind.DisplayName()), fontTitle, 24)
	cur.drawRule(12)
	return nil
}

// metadataBlock draws the record id, client fields and date, with absent
// fields replaced by the profile's default string.
func (a *Assembler) metadataBlock(cur *cursor, record *billing.BillingRecord, p profile) {
	orDefault := func(s string) string {
		if s == "" {
			return p.textDefault
		}
		return s
	}

	cur.drawTextLine(fmt.Sprintf("%s: %s", p.idLabel, record.ID), fontHeader, 16)
	cur.drawTextLine(fmt.Sprintf("Client: %s", orDefault(record.ClientName)), fontBody, 14)
	cur.drawTextLine(fmt.Sprintf("Address: %s", orDefault(record.ClientAddress)), fontBody, 14)
	cur.drawTextLine(fmt.Sprintf("Email: %s", orDefault(record.ClientEmail)), fontBody, 14)
	cur.drawTextLine(fmt.Sprintf("Date: %s", orDefault(record.Date)), fontBody, 14)
	cur.drawTextLine(fmt.Sprintf("Category: %s", record.EffectiveCategory().DisplayName()), fontBody, 14)
	cur.advance(10)
}

// tableBlock draws the line-item grid followed by the totals rows
func (a *Assembler) tableBlock(cur *cursor, record *billing.BillingRecord, p profile) error {
	schema := p.schemaFor(record)

	body := make([][]string, 0, len(record.Items))
	for _, item := range record.Items {
		body = append(body, schema.Row(item, p.textDefault))
	}
	totals := Rows(a.aggregator.Compute(record), len(schema.Columns))

	return cur.layoutTable(schema, body, totals)
}

// wordsBlock spells the grand total out beneath the table
func (a *Assembler) wordsBlock(cur *cursor, record *billing.BillingRecord) {
	grand := a.aggregator.GrandTotal(record)
	whole := grand.Floor()
	if whole < 0 {
		whole = 0
	}
	words := capitalize(AmountInWords(whole))

	cur.advance(10)
	cur.drawTextLine(
		fmt.Sprintf("Amount in Words: %s %s Only", words, a.currencyUnit),
		fontHeader, 16)
}

// closingBlock draws the boilerplate lines and, on invoices, the signature
// image. A missing signature asset is skipped silently.
func (a *Assembler) closingBlock(cur *cursor, p profile) {
	cur.advance(10)
	for _, line := range p.closingLines {
		cur.drawTextLine(line, fontBody, 14)
	}

	if p.withSignature && a.signatureName != "" {
		sig, err := a.assets.Resolve(a.signatureName)
		if err != nil {
			return
		}
		if cur.needsBreak(70) {
			cur.newPage()
		}
		cur.advance(10)
		cur.drawImage(sig.Path, sig.Format, cur.doc.Margin, cur.y, 120, 50)
		cur.advance(60)
		cur.drawTextLine("Authorized Signature", fontBody, 14)
	}
}

// capitalize upper-cases the first rune
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
