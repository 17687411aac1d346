package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"turnero/internal/domain/turno"
	"turnero/internal/infrastructure/persistence/mappers"
	"turnero/internal/infrastructure/persistence/models"
	"turnero/internal/shared/db"
	"turnero/internal/shared/errors"
)

type TurnoRepository struct {
	db     *gorm.DB
	mapper mappers.TurnoMapper
}

func NewTurnoRepository(database *gorm.DB) *TurnoRepository {
	return &TurnoRepository{
		db:     database,
		mapper: mappers.NewTurnoMapper(),
	}
}

func (r *TurnoRepository) Save(ctx context.Context, t *turno.Turno) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		// Duplicate user_id surfaces unchanged so the caller can recover.
		if errors.IsDuplicateError(err) {
			return err
		}
		return fmt.Errorf("failed to save turno: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TurnoRepository) Update(ctx context.Context, t *turno.Turno) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TurnoModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]interface{}{
			"name":       t.Name(),
			"request":    t.Request(),
			"updated_at": t.UpdatedAt().UnixMilli(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update turno: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TurnoRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TurnoModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete turno: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("turno not found")
	}

	return nil
}

func (r *TurnoRepository) GetByID(ctx context.Context, id uint) (*turno.Turno, error) {
	var model models.TurnoModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("turno not found")
		}
		return nil, fmt.Errorf("failed to find turno: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TurnoRepository) GetByUserID(ctx context.Context, userID string) (*turno.Turno, error) {
	var model models.TurnoModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("turno not found")
		}
		return nil, fmt.Errorf("failed to find turno: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TurnoRepository) List(ctx context.Context) ([]*turno.Turno, error) {
	var turnoModels []models.TurnoModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("id DESC").
		Find(&turnoModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list turnos: %w", err)
	}

	turnos := make([]*turno.Turno, len(turnoModels))
	for i, model := range turnoModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		turnos[i] = t
	}

	return turnos, nil
}

func (r *TurnoRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TurnoModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count turnos: %w", err)
	}

	return total, nil
}
