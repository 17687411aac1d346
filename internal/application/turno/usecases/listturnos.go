package usecases

import (
	"context"

	"turnero/internal/application/turno/dto"
	"turnero/internal/domain/turno"
	"turnero/internal/shared/logger"
)

type ListTurnosResult struct {
	Turnos []dto.TurnoDTO
	Total  int64
}

type ListTurnosUseCase struct {
	turnoRepo turno.Repository
	logger    logger.Interface
}

func NewListTurnosUseCase(turnoRepo turno.Repository, logger logger.Interface) *ListTurnosUseCase {
	return &ListTurnosUseCase{
		turnoRepo: turnoRepo,
		logger:    logger,
	}
}

func (uc *ListTurnosUseCase) Execute(ctx context.Context) (*ListTurnosResult, error) {
	turnos, err := uc.turnoRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list turnos", "error", err)
		return nil, err
	}

	total, err := uc.turnoRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count turnos", "error", err)
		return nil, err
	}

	return &ListTurnosResult{
		Turnos: dto.FromEntities(turnos),
		Total:  total,
	}, nil
}
