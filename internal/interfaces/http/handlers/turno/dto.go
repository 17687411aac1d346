package turno

import (
	"time"

	"turnero/internal/application/turno/dto"
	"turnero/internal/application/turno/usecases"
)

type CreateTurnoRequest struct {
	UserID  string `json:"userId" binding:"required,max=64"`
	Name    string `json:"name" binding:"required,max=200"`
	Request string `json:"request" binding:"required,max=5000"`
}

func (r *CreateTurnoRequest) ToCommand() usecases.CreateTurnoCommand {
	return usecases.CreateTurnoCommand{
		UserID:  r.UserID,
		Name:    r.Name,
		Request: r.Request,
	}
}

type UpdateTurnoRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Request string `json:"request" binding:"required,max=5000"`
}

func (r *UpdateTurnoRequest) ToCommand(turnoID uint) usecases.UpdateTurnoCommand {
	return usecases.UpdateTurnoCommand{
		TurnoID: turnoID,
		Name:    r.Name,
		Request: r.Request,
	}
}

// TicketResponse is the body returned by ticket issuance. It carries the
// printable fields plus a link to the PDF receipt.
type TicketResponse struct {
	TicketLabel string    `json:"ticketLabel"`
	Name        string    `json:"name"`
	Request     string    `json:"request"`
	CreatedAt   time.Time `json:"createdAt"`
	Message     string    `json:"message"`
	PDFURL      string    `json:"pdfUrl"`
}

func newTicketResponse(t dto.TurnoDTO, message, pdfURL string) TicketResponse {
	return TicketResponse{
		TicketLabel: t.TicketLabel,
		Name:        t.Name,
		Request:     t.Request,
		CreatedAt:   t.CreatedAt,
		Message:     message,
		PDFURL:      pdfURL,
	}
}

// MutationResponse is the body returned by update and delete operations.
type MutationResponse struct {
	Message string       `json:"message"`
	Ticket  dto.TurnoDTO `json:"ticket"`
}
