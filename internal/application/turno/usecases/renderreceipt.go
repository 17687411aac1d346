package usecases

import (
	"context"
	"io"
	"time"

	"turnero/internal/domain/turno"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

// ReceiptRenderer writes a printable receipt for one record. Rendering is a
// pure function of the record and the render time; the only failure mode is
// a write error on the destination stream.
type ReceiptRenderer interface {
	Render(t *turno.Turno, renderedAt time.Time, w io.Writer) error
}

type RenderReceiptQuery struct {
	TurnoID uint
	Out     io.Writer
}

type RenderReceiptResult struct {
	TicketLabel string
}

type RenderReceiptUseCase struct {
	turnoRepo turno.Repository
	renderer  ReceiptRenderer
	logger    logger.Interface
}

func NewRenderReceiptUseCase(
	turnoRepo turno.Repository,
	renderer ReceiptRenderer,
	logger logger.Interface,
) *RenderReceiptUseCase {
	return &RenderReceiptUseCase{
		turnoRepo: turnoRepo,
		renderer:  renderer,
		logger:    logger,
	}
}

func (uc *RenderReceiptUseCase) Execute(ctx context.Context, query RenderReceiptQuery) (*RenderReceiptResult, error) {
	if query.Out == nil {
		return nil, errors.NewValidationError("receipt destination is required")
	}

	t, err := uc.turnoRepo.GetByID(ctx, query.TurnoID)
	if err != nil {
		return nil, err
	}

	if err := uc.renderer.Render(t, time.Now(), query.Out); err != nil {
		uc.logger.Errorw("failed to render receipt", "turno_id", query.TurnoID, "error", err)
		return nil, errors.NewInternalError("failed to render receipt")
	}

	uc.logger.Debugw("receipt rendered", "turno_id", query.TurnoID, "label", t.Label())

	return &RenderReceiptResult{TicketLabel: t.Label()}, nil
}
