package receipt

import (
	"io"
	"time"

	"turnero/internal/domain/turno"
)

// Renderer turns a turno into its printable PDF receipt.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(t *turno.Turno, renderedAt time.Time, w io.Writer) error {
	return WritePDF(BuildLayout(t, renderedAt), w)
}
