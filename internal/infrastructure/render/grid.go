package render

// CommandKind identifies a draw primitive
type CommandKind string

const (
	CommandRect  CommandKind = "RECT"
	CommandText  CommandKind = "TEXT"
	CommandImage CommandKind = "IMAGE"
	CommandLine  CommandKind = "LINE"
)

// FontSpec selects the typeface for a text command
type FontSpec struct {
	Family string
	Style  string
	Size   float64
}

// Command is one deterministic draw instruction. Identical inputs always
// produce identical command sequences, which is what the layout tests
// compare.
type Command struct {
	Kind CommandKind

	X, Y float64
	W, H float64

	// LINE endpoint
	X2, Y2 float64

	// TEXT payload
	Text  string
	Align string
	Font  FontSpec

	// IMAGE payload
	ImagePath   string
	ImageFormat string
}

// Page holds the draw commands of one output page in draw order
type Page struct {
	Commands []Command
}

// Document is a fully laid-out multi-page document, ready for encoding
type Document struct {
	Title       string
	Orientation string // "P" or "L"
	Width       float64
	Height      float64
	Margin      float64
	Pages       []Page
}

// A4 page dimensions in points
const (
	pageShortSide = 595.28
	pageLongSide  = 841.89
)

// Layout metrics, in points
const (
	pageMargin      = 50.0
	headerRowHeight = 25.0
	bodyRowHeight   = 25.0
	textInset       = 7.0
)

// Default fonts
var (
	fontBody   = FontSpec{Family: "Helvetica", Style: "", Size: 10}
	fontHeader = FontSpec{Family: "Helvetica", Style: "B", Size: 10}
	fontTitle  = FontSpec{Family: "Helvetica", Style: "B", Size: 16}
)

// NewDocument creates an empty document with A4 dimensions for the given
// orientation ("P" portrait, "L" landscape) and one blank starting page.
func NewDocument(title, orientation string) *Document {
	doc := &Document{
		Title:       title,
		Orientation: orientation,
		Width:       pageShortSide,
		Height:      pageLongSide,
		Margin:      pageMargin,
	}
	if orientation == "L" {
		doc.Width, doc.Height = doc.Height, doc.Width
	}
	doc.Pages = []Page{{}}
	return doc
}

// UsableWidth is the horizontal space between the margins
func (d *Document) UsableWidth() float64 {
	return d.Width - 2*d.Margin
}

// push appends a command to the current (last) page
func (d *Document) push(cmd Command) {
	p := &d.Pages[len(d.Pages)-1]
	p.Commands = append(p.Commands, cmd)
}

// cursor tracks the vertical write position within one layout run. It is
// local to a single render, so concurrent renders never share state.
type cursor struct {
	doc *Document
	y   float64
}

func newCursor(doc *Document) *cursor {
	return &cursor{doc: doc, y: doc.Margin}
}

// needsBreak reports whether a block of the given height would cross the
// bottom margin.
func (c *cursor) needsBreak(height float64) bool {
	return c.y+height > c.doc.Height-c.doc.Margin
}

// newPage starts a fresh page and resets the cursor to the top margin
func (c *cursor) newPage() {
	c.doc.Pages = append(c.doc.Pages, Page{})
	c.y = c.doc.Margin
}

// advance moves the cursor down
func (c *cursor) advance(height float64) {
	c.y += height
}

// scaleWidths converts relative weights to absolute column widths summing
// exactly to usable. The last column absorbs the rounding remainder.
func scaleWidths(weights []float64, usable float64) []float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	widths := make([]float64, len(weights))
	used := 0.0
	for i, w := range weights[:len(weights)-1] {
		widths[i] = usable * w / total
		used += widths[i]
	}
	widths[len(weights)-1] = usable - used
	return widths
}

// drawRow emits one bordered table row: a rectangle at the full cell
// bounds plus centered text per cell. Adjacent cells share borders, so
// only the text is inset.
func (c *cursor) drawRow(cells []string, widths []float64, rowHeight float64, font FontSpec) {
	x := c.doc.Margin
	for i, cell := range cells {
		c.doc.push(Command{
			Kind: CommandRect,
			X:    x,
			Y:    c.y,
			W:    widths[i],
			H:    rowHeight,
		})
		c.doc.push(Command{
			Kind:  CommandText,
			X:     x + textInset,
			Y:     c.y,
			W:     widths[i] - 2*textInset,
			H:     rowHeight,
			Text:  cell,
			Align: "CM",
			Font:  font,
		})
		x += widths[i]
	}
	c.advance(rowHeight)
}

// layoutTable lays out a full table: header row, body rows and totals rows.
// Column counts are validated against the schema before anything is drawn,
// so a malformed record never produces partial output. When a row would
// cross the page bottom the table continues on a new page and the header
// row is drawn again so every page reads standalone.
func (c *cursor) layoutTable(schema ColumnSchema, body [][]string, totals [][]string) error {
	headers := schema.Headers()
	for _, row := range body {
		if len(row) != len(headers) {
			return NewRenderError(ErrCodeColumnMismatch,
				"row does not match schema column count", nil)
		}
	}
	for _, row := range totals {
		if len(row) != len(headers) {
			return NewRenderError(ErrCodeColumnMismatch,
				"totals row does not match schema column count", nil)
		}
	}

	widths := scaleWidths(schema.Weights(), c.doc.UsableWidth())

	drawHeader := func() {
		c.drawRow(headers, widths, headerRowHeight, fontHeader)
	}

	if c.needsBreak(headerRowHeight + bodyRowHeight) {
		c.newPage()
	}
	drawHeader()

	rows := make([][]string, 0, len(body)+len(totals))
	rows = append(rows, body...)
	rows = append(rows, totals...)

	for _, row := range rows {
		if c.needsBreak(bodyRowHeight) {
			c.newPage()
			drawHeader()
		}
		c.drawRow(row, widths, bodyRowHeight, fontBody)
	}
	return nil
}

// drawTextLine emits one left-aligned text line at the cursor and advances
func (c *cursor) drawTextLine(text string, font FontSpec, lineHeight float64) {
	if c.needsBreak(lineHeight) {
		c.newPage()
	}
	c.doc.push(Command{
		Kind:  CommandText,
		X:     c.doc.Margin,
		Y:     c.y,
		W:     c.doc.UsableWidth(),
		H:     lineHeight,
		Text:  text,
		Align: "LM",
		Font:  font,
	})
	c.advance(lineHeight)
}

// drawImage places an image at the given position without moving the cursor
func (c *cursor) drawImage(path, format string, x, y, w, h float64) {
	c.doc.push(Command{
		Kind:        CommandImage,
		X:           x,
		Y:           y,
		W:           w,
		H:           h,
		ImagePath:   path,
		ImageFormat: format,
	})
}

// drawRule emits a horizontal rule across the usable width and advances
func (c *cursor) drawRule(gap float64) {
	c.doc.push(Command{
		Kind: CommandLine,
		X:    c.doc.Margin,
		Y:    c.y,
		X2:   c.doc.Width - c.doc.Margin,
		Y2:   c.y,
	})
	c.advance(gap)
}
