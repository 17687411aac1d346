package mappers

import (
	"time"

	"turnero/internal/domain/turno"
	"turnero/internal/infrastructure/persistence/models"
)

// TurnoMapper handles the conversion between Turno domain entities and
// persistence models.
type TurnoMapper interface {
	ToModel(t *turno.Turno) *models.TurnoModel
	ToDomain(model *models.TurnoModel) (*turno.Turno, error)
}

type TurnoMapperImpl struct{}

func NewTurnoMapper() TurnoMapper {
	return &TurnoMapperImpl{}
}

func (m *TurnoMapperImpl) ToModel(t *turno.Turno) *models.TurnoModel {
	return &models.TurnoModel{
		ID:        t.ID(),
		UserID:    t.UserID(),
		Name:      t.Name(),
		Request:   t.Request(),
		Label:     t.Label(),
		CreatedAt: t.CreatedAt().UnixMilli(),
		UpdatedAt: t.UpdatedAt().UnixMilli(),
	}
}

func (m *TurnoMapperImpl) ToDomain(model *models.TurnoModel) (*turno.Turno, error) {
	return turno.ReconstructTurno(
		model.ID,
		model.UserID,
		model.Name,
		model.Request,
		model.Label,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
