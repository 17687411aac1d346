package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"turnero/internal/domain/turno"
	"turnero/internal/infrastructure/persistence/models"
	"turnero/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(&models.TurnoModel{}, &models.LabelCounterModel{})
	require.NoError(t, err)

	return database
}

func newTestTurno(t *testing.T, userID, name, request, label string) *turno.Turno {
	entity, err := turno.NewTurno(userID, name, request)
	require.NoError(t, err)
	require.NoError(t, entity.SetLabel(label))
	return entity
}

func TestTurnoRepository_SaveAndGetByID(t *testing.T) {
	repo := NewTurnoRepository(setupTestDB(t))
	ctx := context.Background()

	entity := newTestTurno(t, "u-100", "Ana Gomez", "Renew license", "T-0001")
	require.NoError(t, repo.Save(ctx, entity))
	assert.NotZero(t, entity.ID())

	found, err := repo.GetByID(ctx, entity.ID())
	require.NoError(t, err)
	assert.Equal(t, "u-100", found.UserID())
	assert.Equal(t, "Ana Gomez", found.Name())
	assert.Equal(t, "Renew license", found.Request())
	assert.Equal(t, "T-0001", found.Label())
	assert.False(t, found.CreatedAt().IsZero())
}

func TestTurnoRepository_GetByID_NotFound(t *testing.T) {
	repo := NewTurnoRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTurnoRepository_GetByUserID(t *testing.T) {
	repo := NewTurnoRepository(setupTestDB(t))
	ctx := context.Background()

	entity := newTestTurno(t, "u-200", "Luis Perez", "New passport", "T-0002")
	require.NoError(t, repo.Save(ctx, entity))

	found, err := repo.GetByUserID(ctx, "u-200")
	require.NoError(t, err)
	assert.Equal(t, entity.ID(), found.ID())
	assert.Equal(t, "T-0002", found.Label())

	_, err = repo.GetByUserID(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTurnoRepository_Save_DuplicateUserID(t *testing.T) {
	repo := NewTurnoRepository(setupTestDB(t))
	ctx := context.Background()

	first := newTestTurno(t, "u-300", "First", "Request one", "T-0003")
	require.NoError(t, repo.Save(ctx, first))

	second := newTestTurno(t, "u-300", "Second", "Request two", "T-0004")
	err := repo.Save(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestTurnoRepository_Update_PreservesLabelAndCreatedAt(t *testing.T) {
	repo := NewTurnoRepository(setupTestDB(t))
	ctx := context.Background()

	entity := newTestTurno(t, "u-400", "Before", "Old request", "T-0005")
	require.NoError(t, repo.Save(ctx, entity))

	saved, err := repo.GetByID(ctx, entity.ID())
	require.NoError(t, err)
	originalCreatedAt := saved.CreatedAt()

	time.Sleep(5 * time.Millisecond)

	require.NoError(t, saved.UpdateDetails("After", "New request"))
	require.NoError(t, repo.Update(ctx, saved))

	updated, err := repo.GetByID(ctx, entity.ID())
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Name())
	assert.Equal(t, "New request", updated.Request())
	assert.Equal(t, "T-0005", updated.Label())
	assert.Equal(t, originalCreatedAt.UnixMilli(), updated.CreatedAt().UnixMilli())
	assert.True(t, updated.UpdatedAt().After(originalCreatedAt))
}

func TestTurnoRepository_Delete(t *testing.T) {
	repo := NewTurnoRepository(setupTestDB(t))
	ctx := context.Background()

	entity := newTestTurno(t, "u-500", "Gone Soon", "Remove me", "T-0006")
	require.NoError(t, repo.Save(ctx, entity))

	require.NoError(t, repo.Delete(ctx, entity.ID()))

	_, err := repo.GetByID(ctx, entity.ID())
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTurnoRepository_Delete_NotFound(t *testing.T) {
	repo := NewTurnoRepository(setupTestDB(t))

	err := repo.Delete(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTurnoRepository_List_NewestFirst(t *testing.T) {
	repo := NewTurnoRepository(setupTestDB(t))
	ctx := context.Background()

	for i, userID := range []string{"u-601", "u-602", "u-603"} {
		entity := newTestTurno(t, userID, "User", "Request", formatTestLabel(i+10))
		require.NoError(t, repo.Save(ctx, entity))
	}

	turnos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, turnos, 3)
	assert.Equal(t, "u-603", turnos[0].UserID())
	assert.Equal(t, "u-602", turnos[1].UserID())
	assert.Equal(t, "u-601", turnos[2].UserID())
}

func TestTurnoRepository_List_Empty(t *testing.T) {
	repo := NewTurnoRepository(setupTestDB(t))

	turnos, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, turnos)
}

func TestTurnoRepository_Count(t *testing.T) {
	repo := NewTurnoRepository(setupTestDB(t))
	ctx := context.Background()

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	for i, userID := range []string{"u-701", "u-702"} {
		entity := newTestTurno(t, userID, "User", "Request", formatTestLabel(i+20))
		require.NoError(t, repo.Save(ctx, entity))
	}

	total, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func formatTestLabel(n int) string {
	return fmt.Sprintf("T-%04d", n)
}
