package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnero/internal/domain/turno"
	apperrors "turnero/internal/shared/errors"
)

func TestDeleteTurnoUseCase_Execute_Success(t *testing.T) {
	createdAt := time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)
	stored := newStoredTurno(1, "u1", "Ann", "Q1", "T-0001", createdAt)

	var deletedID uint
	mockRepo := &mockTurnoRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*turno.Turno, error) {
			return stored, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}

	useCase := NewDeleteTurnoUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteTurnoCommand{TurnoID: 1})

	require.NoError(t, err)
	assert.Equal(t, uint(1), deletedID)
	// The removed record comes back to the caller.
	assert.Equal(t, "T-0001", result.Turno.TicketLabel)
	assert.Equal(t, "Ann", result.Turno.Name)
}

func TestDeleteTurnoUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTurnoRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*turno.Turno, error) {
			return nil, apperrors.NewNotFoundError("turno not found")
		},
	}

	useCase := NewDeleteTurnoUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteTurnoCommand{TurnoID: 999})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteTurnoUseCase_Execute_RepositoryError(t *testing.T) {
	createdAt := time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)
	stored := newStoredTurno(1, "u1", "Ann", "Q1", "T-0001", createdAt)

	mockRepo := &mockTurnoRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*turno.Turno, error) {
			return stored, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			return errors.New("database connection failed")
		},
	}

	useCase := NewDeleteTurnoUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteTurnoCommand{TurnoID: 1})

	require.Error(t, err)
	assert.Nil(t, result)
}
