package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"turnero/internal/infrastructure/persistence/models"
	"turnero/internal/shared/db"
)

const turnoSequenceName = "turno"

// SequenceLabelAllocator mints ticket labels from an atomically incremented
// counter row rather than a point-in-time row count, so concurrent creations
// for different users can never receive the same label. When called inside a
// transaction (via shared/db), the increment and the subsequent insert
// commit or roll back together.
type SequenceLabelAllocator struct {
	db *gorm.DB
}

func NewSequenceLabelAllocator(database *gorm.DB) *SequenceLabelAllocator {
	return &SequenceLabelAllocator{db: database}
}

func (a *SequenceLabelAllocator) NextLabel(ctx context.Context) (string, error) {
	tx := db.GetTxFromContext(ctx, a.db)

	result := tx.
		Model(&models.LabelCounterModel{}).
		Where("name = ?", turnoSequenceName).
		Update("value", gorm.Expr("value + 1"))
	if result.Error != nil {
		return "", fmt.Errorf("failed to advance label sequence: %w", result.Error)
	}

	// First allocation on a database whose counter row was never seeded.
	if result.RowsAffected == 0 {
		counter := models.LabelCounterModel{Name: turnoSequenceName, Value: 1}
		if err := tx.Create(&counter).Error; err != nil {
			return "", fmt.Errorf("failed to seed label sequence: %w", err)
		}
		return formatLabel(counter.Value), nil
	}

	var counter models.LabelCounterModel
	if err := tx.
		Where("name = ?", turnoSequenceName).
		First(&counter).Error; err != nil {
		return "", fmt.Errorf("failed to read label sequence: %w", err)
	}

	return formatLabel(counter.Value), nil
}

// formatLabel zero-pads to four digits; values past 9999 stay valid and
// simply grow wider.
func formatLabel(n int64) string {
	return fmt.Sprintf("T-%04d", n)
}
