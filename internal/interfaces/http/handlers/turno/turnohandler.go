package turno

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"turnero/internal/application/turno/usecases"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
	"turnero/internal/shared/utils"
)

type TurnoHandler struct {
	createTurnoUC   usecases.CreateTurnoExecutor
	getTurnoUC      usecases.GetTurnoExecutor
	listTurnosUC    usecases.ListTurnosExecutor
	updateTurnoUC   usecases.UpdateTurnoExecutor
	deleteTurnoUC   usecases.DeleteTurnoExecutor
	renderReceiptUC usecases.RenderReceiptExecutor
	logger          logger.Interface
}

func NewTurnoHandler(
	createTurnoUC usecases.CreateTurnoExecutor,
	getTurnoUC usecases.GetTurnoExecutor,
	listTurnosUC usecases.ListTurnosExecutor,
	updateTurnoUC usecases.UpdateTurnoExecutor,
	deleteTurnoUC usecases.DeleteTurnoExecutor,
	renderReceiptUC usecases.RenderReceiptExecutor,
) *TurnoHandler {
	return &TurnoHandler{
		createTurnoUC:   createTurnoUC,
		getTurnoUC:      getTurnoUC,
		listTurnosUC:    listTurnosUC,
		updateTurnoUC:   updateTurnoUC,
		deleteTurnoUC:   deleteTurnoUC,
		renderReceiptUC: renderReceiptUC,
		logger:          logger.NewLogger(),
	}
}

// CreateTurno handles POST /turno. Issuance is idempotent per user: a user
// who already holds a ticket gets the existing one back with a 200 instead
// of a new label.
func (h *TurnoHandler) CreateTurno(c *gin.Context) {
	var req CreateTurnoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create turno", "error", err)
		utils.BindingErrorResponse(c, err)
		return
	}

	result, err := h.createTurnoUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status := http.StatusCreated
	message := "Turno asignado"
	if !result.IsNew {
		status = http.StatusOK
		message = "Ya tienes un turno asignado"
	}

	c.JSON(status, newTicketResponse(result.Turno, message, receiptPath(result.Turno.ID)))
}

// GetTurno handles GET /turno/:id
func (h *TurnoHandler) GetTurno(c *gin.Context) {
	turnoID, err := parseTurnoID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTurnoUC.Execute(c.Request.Context(), usecases.GetTurnoQuery{TurnoID: turnoID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result.Turno)
}

// ListTurnos handles GET /turnos. Returns the full set as a bare array,
// newest first.
func (h *TurnoHandler) ListTurnos(c *gin.Context) {
	result, err := h.listTurnosUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result.Turnos)
}

// UpdateTurno handles PUT /turno/:id. Only name and request change; the
// label and issuance time are immutable.
func (h *TurnoHandler) UpdateTurno(c *gin.Context) {
	turnoID, err := parseTurnoID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTurnoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update turno", "turno_id", turnoID, "error", err)
		utils.BindingErrorResponse(c, err)
		return
	}

	result, err := h.updateTurnoUC.Execute(c.Request.Context(), req.ToCommand(turnoID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MutationResponse{
		Message: "Turno actualizado",
		Ticket:  result.Turno,
	})
}

// DeleteTurno handles DELETE /turno/:id
func (h *TurnoHandler) DeleteTurno(c *gin.Context) {
	turnoID, err := parseTurnoID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteTurnoUC.Execute(c.Request.Context(), usecases.DeleteTurnoCommand{TurnoID: turnoID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MutationResponse{
		Message: "Turno eliminado",
		Ticket:  result.Turno,
	})
}

// Receipt handles GET /turno/:id/pdf. The document is rendered into memory
// first so a render failure can still produce a clean JSON error instead of
// a truncated download.
func (h *TurnoHandler) Receipt(c *gin.Context) {
	turnoID, err := parseTurnoID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var buf bytes.Buffer
	result, err := h.renderReceiptUC.Execute(c.Request.Context(), usecases.RenderReceiptQuery{
		TurnoID: turnoID,
		Out:     &buf,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=turno-%s.pdf", result.TicketLabel))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func receiptPath(turnoID uint) string {
	return fmt.Sprintf("/turno/%d/pdf", turnoID)
}

func parseTurnoID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid turno ID")
	}
	return uint(id), nil
}
