package usecases

import "context"

// TransactionManager runs a function inside a single database transaction.
// Satisfied by shared/db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTurnoExecutor interface {
	Execute(ctx context.Context, cmd CreateTurnoCommand) (*CreateTurnoResult, error)
}

type GetTurnoExecutor interface {
	Execute(ctx context.Context, query GetTurnoQuery) (*GetTurnoResult, error)
}

type ListTurnosExecutor interface {
	Execute(ctx context.Context) (*ListTurnosResult, error)
}

type UpdateTurnoExecutor interface {
	Execute(ctx context.Context, cmd UpdateTurnoCommand) (*UpdateTurnoResult, error)
}

type DeleteTurnoExecutor interface {
	Execute(ctx context.Context, cmd DeleteTurnoCommand) (*DeleteTurnoResult, error)
}

type RenderReceiptExecutor interface {
	Execute(ctx context.Context, query RenderReceiptQuery) (*RenderReceiptResult, error)
}
