package usecases

import (
	"context"

	"turnero/internal/application/turno/dto"
	"turnero/internal/domain/turno"
	"turnero/internal/shared/logger"
)

type DeleteTurnoCommand struct {
	TurnoID uint
}

type DeleteTurnoResult struct {
	// Turno is the record as it existed before removal.
	Turno dto.TurnoDTO
}

type DeleteTurnoUseCase struct {
	turnoRepo turno.Repository
	logger    logger.Interface
}

func NewDeleteTurnoUseCase(turnoRepo turno.Repository, logger logger.Interface) *DeleteTurnoUseCase {
	return &DeleteTurnoUseCase{
		turnoRepo: turnoRepo,
		logger:    logger,
	}
}

func (uc *DeleteTurnoUseCase) Execute(ctx context.Context, cmd DeleteTurnoCommand) (*DeleteTurnoResult, error) {
	t, err := uc.turnoRepo.GetByID(ctx, cmd.TurnoID)
	if err != nil {
		return nil, err
	}

	if err := uc.turnoRepo.Delete(ctx, cmd.TurnoID); err != nil {
		uc.logger.Errorw("failed to delete turno", "turno_id", cmd.TurnoID, "error", err)
		return nil, err
	}

	uc.logger.Infow("turno deleted", "turno_id", cmd.TurnoID, "label", t.Label())

	return &DeleteTurnoResult{Turno: dto.FromEntity(t)}, nil
}
