package receipt

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const fontFamily = "Helvetica"

// WritePDF streams the given layout to w as a single A4 page. The blocks are
// already fully decided, so this is one linear pass over the instruction
// list; the only error source is the output stream itself.
func WritePDF(blocks []Block, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentWidth := pageWidth - left - right

	for _, block := range blocks {
		switch block.Kind {
		case BlockRule:
			y := pdf.GetY()
			pdf.SetDrawColor(block.Color.R, block.Color.G, block.Color.B)
			pdf.Line(left, y, left+contentWidth, y)
			pdf.SetY(y + block.SpaceAfter)
		case BlockText:
			writeTextBlock(pdf, block, contentWidth)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func writeTextBlock(pdf *gofpdf.Fpdf, block Block, contentWidth float64) {
	pdf.SetTextColor(block.Color.R, block.Color.G, block.Color.B)
	lineHeight := pdf.PointConvert(block.Size) + block.LineGap

	// Mixed-style lines are written span by span; single-span blocks go
	// through MultiCell so alignment and wrapping apply.
	if len(block.Spans) == 1 {
		span := block.Spans[0]
		pdf.SetFont(fontFamily, fontStyle(span.Bold), block.Size)
		pdf.MultiCell(contentWidth, lineHeight, span.Text, "", block.Align, false)
	} else {
		for _, span := range block.Spans {
			pdf.SetFont(fontFamily, fontStyle(span.Bold), block.Size)
			pdf.Write(lineHeight, span.Text)
		}
		pdf.Ln(lineHeight)
	}

	pdf.SetY(pdf.GetY() + block.SpaceAfter)
}

func fontStyle(bold bool) string {
	if bold {
		return "B"
	}
	return ""
}
