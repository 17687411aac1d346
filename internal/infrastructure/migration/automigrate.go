package migration

import (
	"turnero/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TurnoModel{},
		&models.LabelCounterModel{},
	}
}
