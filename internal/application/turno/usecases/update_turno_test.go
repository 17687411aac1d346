package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnero/internal/domain/turno"
	apperrors "turnero/internal/shared/errors"
)

func TestUpdateTurnoUseCase_Execute_Success(t *testing.T) {
	createdAt := time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)
	stored := newStoredTurno(1, "u1", "Ann", "Q1", "T-0001", createdAt)

	var updated *turno.Turno
	mockRepo := &mockTurnoRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*turno.Turno, error) {
			return stored, nil
		},
		UpdateFunc: func(ctx context.Context, tk *turno.Turno) error {
			updated = tk
			return nil
		},
	}

	useCase := NewUpdateTurnoUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTurnoCommand{
		TurnoID: 1,
		Name:    "Bob",
		Request: "New request",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bob", result.Turno.Name)
	assert.Equal(t, "New request", result.Turno.Request)
	// The label and creation time never change on update.
	assert.Equal(t, "T-0001", result.Turno.TicketLabel)
	assert.Equal(t, createdAt, result.Turno.CreatedAt)

	require.NotNil(t, updated)
	assert.Equal(t, "Bob", updated.Name())
}

func TestUpdateTurnoUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command UpdateTurnoCommand
	}{
		{
			name:    "empty name",
			command: UpdateTurnoCommand{TurnoID: 1, Request: "Q"},
		},
		{
			name:    "empty request",
			command: UpdateTurnoCommand{TurnoID: 1, Name: "Bob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewUpdateTurnoUseCase(&mockTurnoRepository{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestUpdateTurnoUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTurnoRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*turno.Turno, error) {
			return nil, apperrors.NewNotFoundError("turno not found")
		},
	}

	useCase := NewUpdateTurnoUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTurnoCommand{
		TurnoID: 999,
		Name:    "Bob",
		Request: "Q",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}
