package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/lvillar/gofpdf"
)

// PDFEncoder turns a laid-out Document into PDF bytes
type PDFEncoder interface {
	Encode(ctx context.Context, doc *Document) ([]byte, error)
}

// FpdfEncoder encodes documents with gofpdf. The layout engine has already
// decided every position, so the encoder is a plain command interpreter.
type FpdfEncoder struct{}

// NewFpdfEncoder creates a gofpdf-backed encoder
func NewFpdfEncoder() *FpdfEncoder {
	return &FpdfEncoder{}
}

// Encode implements PDFEncoder
func (e *FpdfEncoder) Encode(ctx context.Context, doc *Document) ([]byte, error) {
	pdf := gofpdf.New(doc.Orientation, "pt", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(doc.Margin, doc.Margin, doc.Margin)
	pdf.SetAutoPageBreak(false, 0)

	for _, page := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return nil, NewRenderError(ErrCodeEncodeFailed, "encoding canceled", err)
		}
		pdf.AddPage()
		for _, cmd := range page.Commands {
			e.draw(pdf, cmd)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, NewRenderError(ErrCodeEncodeFailed, "pdf output failed", err)
	}
	return buf.Bytes(), nil
}

// draw maps one command to its gofpdf primitive
func (e *FpdfEncoder) draw(pdf *gofpdf.Fpdf, cmd Command) {
	switch cmd.Kind {
	case CommandRect:
		pdf.Rect(cmd.X, cmd.Y, cmd.W, cmd.H, "D")
	case CommandText:
		pdf.SetFont(cmd.Font.Family, cmd.Font.Style, cmd.Font.Size)
		pdf.SetXY(cmd.X, cmd.Y)
		pdf.CellFormat(cmd.W, cmd.H, cmd.Text, "", 0, cmd.Align, false, 0, "")
	case CommandImage:
		pdf.ImageOptions(cmd.ImagePath, cmd.X, cmd.Y, cmd.W, cmd.H, false,
			gofpdf.ImageOptions{ImageType: cmd.ImageFormat, ReadDpi: true}, 0, "")
	case CommandLine:
		pdf.Line(cmd.X, cmd.Y, cmd.X2, cmd.Y2)
	default:
		pdf.SetError(fmt.Errorf("unknown draw command: %s", cmd.Kind))
	}
}
