package receipt

import (
	"time"

	"turnero/internal/domain/turno"
)

// BlockKind discriminates the draw instructions a layout is made of.
type BlockKind int

const (
	BlockText BlockKind = iota
	BlockRule
)

type RGB struct {
	R, G, B int
}

var (
	colorInk    = RGB{R: 33, G: 33, B: 33}
	colorAccent = RGB{R: 13, G: 71, B: 161}
	colorMuted  = RGB{R: 120, G: 120, B: 120}
)

// Span is a run of text within a block. Bold spans are used for field
// labels so they render distinctly from their values.
type Span struct {
	Text string
	Bold bool
}

// Block is a single draw instruction. Building the full list up front keeps
// layout decisions separate from the PDF stream, so the writer makes exactly
// one pass and layout logic stays testable without producing bytes.
type Block struct {
	Kind       BlockKind
	Spans      []Span
	Size       float64
	Color      RGB
	Align      string
	LineGap    float64
	SpaceAfter float64
}

func text(size float64, color RGB, align string, spaceAfter float64, spans ...Span) Block {
	return Block{
		Kind:       BlockText,
		Spans:      spans,
		Size:       size,
		Color:      color,
		Align:      align,
		LineGap:    2,
		SpaceAfter: spaceAfter,
	}
}

func rule(spaceAfter float64) Block {
	return Block{Kind: BlockRule, Color: colorMuted, SpaceAfter: spaceAfter}
}

// BuildLayout produces the complete receipt as an ordered list of draw
// instructions for one turno. renderedAt stamps the footer so reprints are
// distinguishable from the original issuance time.
func BuildLayout(t *turno.Turno, renderedAt time.Time) []Block {
	const timeLayout = "02/01/2006 15:04"

	return []Block{
		text(20, colorAccent, "C", 2,
			Span{Text: "Comprobante de Turno", Bold: true}),
		text(10, colorMuted, "C", 6,
			Span{Text: "Sistema de Turnos"}),
		rule(8),

		text(34, colorAccent, "C", 10,
			Span{Text: t.Label(), Bold: true}),

		text(12, colorInk, "L", 2,
			Span{Text: "Name: ", Bold: true},
			Span{Text: t.Name()}),
		text(12, colorInk, "L", 2,
			Span{Text: "User ID: ", Bold: true},
			Span{Text: t.UserID()}),
		text(12, colorInk, "L", 8,
			Span{Text: "Date/Time: ", Bold: true},
			Span{Text: t.CreatedAt().Format(timeLayout)}),

		text(12, colorInk, "L", 2,
			Span{Text: "Request:", Bold: true}),
		text(11, colorInk, "J", 8,
			Span{Text: t.Request()}),

		rule(6),
		text(9, colorMuted, "C", 2,
			Span{Text: "Conserve este comprobante hasta ser atendido."}),
		text(8, colorMuted, "C", 0,
			Span{Text: "Emitido: " + renderedAt.Format(timeLayout)}),
	}
}
