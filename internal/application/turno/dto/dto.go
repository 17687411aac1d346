package dto

import (
	"time"

	"turnero/internal/domain/turno"
)

// TurnoDTO is the application-level representation of a queueing record.
type TurnoDTO struct {
	ID          uint      `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Request     string    `json:"request"`
	TicketLabel string    `json:"ticketLabel"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromEntity(t *turno.Turno) TurnoDTO {
	return TurnoDTO{
		ID:          t.ID(),
		UserID:      t.UserID(),
		Name:        t.Name(),
		Request:     t.Request(),
		TicketLabel: t.Label(),
		CreatedAt:   t.CreatedAt(),
	}
}

func FromEntities(entities []*turno.Turno) []TurnoDTO {
	dtos := make([]TurnoDTO, len(entities))
	for i, t := range entities {
		dtos[i] = FromEntity(t)
	}
	return dtos
}
