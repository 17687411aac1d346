package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"turnero/internal/infrastructure/persistence/models"
	"turnero/internal/shared/db"
)

func setupAllocatorDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(&models.LabelCounterModel{})
	require.NoError(t, err)

	return database
}

func TestSequenceLabelAllocator_SequentialLabels(t *testing.T) {
	database := setupAllocatorDB(t)
	allocator := NewSequenceLabelAllocator(database)
	ctx := context.Background()

	first, err := allocator.NextLabel(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T-0001", first)

	second, err := allocator.NextLabel(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T-0002", second)

	third, err := allocator.NextLabel(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T-0003", third)
}

func TestSequenceLabelAllocator_SeededCounter(t *testing.T) {
	database := setupAllocatorDB(t)
	require.NoError(t, database.Create(&models.LabelCounterModel{Name: "turno", Value: 41}).Error)

	allocator := NewSequenceLabelAllocator(database)

	label, err := allocator.NextLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "T-0042", label)
}

func TestSequenceLabelAllocator_PaddingBeyondFourDigits(t *testing.T) {
	database := setupAllocatorDB(t)
	require.NoError(t, database.Create(&models.LabelCounterModel{Name: "turno", Value: 9999}).Error)

	allocator := NewSequenceLabelAllocator(database)

	label, err := allocator.NextLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "T-10000", label)
}

func TestSequenceLabelAllocator_RollsBackWithTransaction(t *testing.T) {
	database := setupAllocatorDB(t)
	require.NoError(t, database.Create(&models.LabelCounterModel{Name: "turno", Value: 0}).Error)

	allocator := NewSequenceLabelAllocator(database)
	txManager := db.NewTransactionManager(database)

	err := txManager.RunInTransaction(context.Background(), func(txCtx context.Context) error {
		label, err := allocator.NextLabel(txCtx)
		require.NoError(t, err)
		assert.Equal(t, "T-0001", label)
		return assert.AnError
	})
	require.Error(t, err)

	// The aborted allocation must not burn the sequence value.
	label, err := allocator.NextLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "T-0001", label)
}
