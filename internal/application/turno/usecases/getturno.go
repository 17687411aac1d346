package usecases

import (
	"context"

	"turnero/internal/application/turno/dto"
	"turnero/internal/domain/turno"
	"turnero/internal/shared/logger"
)

type GetTurnoQuery struct {
	TurnoID uint
}

type GetTurnoResult struct {
	Turno dto.TurnoDTO
}

type GetTurnoUseCase struct {
	turnoRepo turno.Repository
	logger    logger.Interface
}

func NewGetTurnoUseCase(turnoRepo turno.Repository, logger logger.Interface) *GetTurnoUseCase {
	return &GetTurnoUseCase{
		turnoRepo: turnoRepo,
		logger:    logger,
	}
}

func (uc *GetTurnoUseCase) Execute(ctx context.Context, query GetTurnoQuery) (*GetTurnoResult, error) {
	t, err := uc.turnoRepo.GetByID(ctx, query.TurnoID)
	if err != nil {
		return nil, err
	}

	return &GetTurnoResult{Turno: dto.FromEntity(t)}, nil
}
