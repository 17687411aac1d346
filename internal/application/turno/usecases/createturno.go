package usecases

import (
	"context"

	"turnero/internal/application/turno/dto"
	"turnero/internal/domain/turno"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type CreateTurnoCommand struct {
	UserID  string
	Name    string
	Request string
}

type CreateTurnoResult struct {
	Turno dto.TurnoDTO
	// IsNew is false when the user already held a ticket and the existing
	// record was returned unchanged.
	IsNew bool
}

// CreateTurnoUseCase implements create-or-get semantics: the first request
// for a user identity mints a label and persists a record; any further
// request returns the existing record untouched.
type CreateTurnoUseCase struct {
	turnoRepo turno.Repository
	allocator turno.LabelAllocator
	txManager TransactionManager
	logger    logger.Interface
}

func NewCreateTurnoUseCase(
	turnoRepo turno.Repository,
	allocator turno.LabelAllocator,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateTurnoUseCase {
	return &CreateTurnoUseCase{
		turnoRepo: turnoRepo,
		allocator: allocator,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *CreateTurnoUseCase) Execute(ctx context.Context, cmd CreateTurnoCommand) (*CreateTurnoResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create turno command", "error", err)
		return nil, err
	}

	existing, err := uc.turnoRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to look up turno by user ID", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if existing != nil {
		uc.logger.Infow("turno already issued for user", "user_id", cmd.UserID, "label", existing.Label())
		return &CreateTurnoResult{Turno: dto.FromEntity(existing), IsNew: false}, nil
	}

	newTurno, err := turno.NewTurno(cmd.UserID, cmd.Name, cmd.Request)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Label allocation and insert share one transaction so the sequence
	// advances only when the record actually lands.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		label, err := uc.allocator.NextLabel(txCtx)
		if err != nil {
			return err
		}
		if err := newTurno.SetLabel(label); err != nil {
			return err
		}
		return uc.turnoRepo.Save(txCtx, newTurno)
	})
	if err != nil {
		// Lost a same-user race: another request inserted first. The unique
		// index on user_id is the backstop; return the winner's record.
		if errors.IsDuplicateError(err) {
			winner, lookupErr := uc.turnoRepo.GetByUserID(ctx, cmd.UserID)
			if lookupErr != nil {
				uc.logger.Errorw("failed to recover from duplicate turno insert", "user_id", cmd.UserID, "error", lookupErr)
				return nil, lookupErr
			}
			uc.logger.Infow("recovered concurrent turno creation", "user_id", cmd.UserID, "label", winner.Label())
			return &CreateTurnoResult{Turno: dto.FromEntity(winner), IsNew: false}, nil
		}
		uc.logger.Errorw("failed to create turno", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("turno created", "turno_id", newTurno.ID(), "user_id", cmd.UserID, "label", newTurno.Label())

	return &CreateTurnoResult{Turno: dto.FromEntity(newTurno), IsNew: true}, nil
}

func (uc *CreateTurnoUseCase) validateCommand(cmd CreateTurnoCommand) error {
	if len(cmd.UserID) == 0 {
		return errors.NewValidationError("userId is required")
	}
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required")
	}
	if len(cmd.Request) == 0 {
		return errors.NewValidationError("request is required")
	}
	return nil
}
