package usecases

import (
	"context"

	"turnero/internal/application/turno/dto"
	"turnero/internal/domain/turno"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type UpdateTurnoCommand struct {
	TurnoID uint
	Name    string
	Request string
}

type UpdateTurnoResult struct {
	Turno dto.TurnoDTO
}

type UpdateTurnoUseCase struct {
	turnoRepo turno.Repository
	logger    logger.Interface
}

func NewUpdateTurnoUseCase(turnoRepo turno.Repository, logger logger.Interface) *UpdateTurnoUseCase {
	return &UpdateTurnoUseCase{
		turnoRepo: turnoRepo,
		logger:    logger,
	}
}

func (uc *UpdateTurnoUseCase) Execute(ctx context.Context, cmd UpdateTurnoCommand) (*UpdateTurnoResult, error) {
	if len(cmd.Name) == 0 {
		return nil, errors.NewValidationError("name is required")
	}
	if len(cmd.Request) == 0 {
		return nil, errors.NewValidationError("request is required")
	}

	t, err := uc.turnoRepo.GetByID(ctx, cmd.TurnoID)
	if err != nil {
		return nil, err
	}

	if err := t.UpdateDetails(cmd.Name, cmd.Request); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.turnoRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update turno", "turno_id", cmd.TurnoID, "error", err)
		return nil, err
	}

	uc.logger.Infow("turno updated", "turno_id", cmd.TurnoID, "label", t.Label())

	return &UpdateTurnoResult{Turno: dto.FromEntity(t)}, nil
}
