package routes

import (
	"github.com/gin-gonic/gin"

	turnohandlers "turnero/internal/interfaces/http/handlers/turno"
)

type TurnoRouteConfig struct {
	TurnoHandler *turnohandlers.TurnoHandler
}

func SetupTurnoRoutes(engine *gin.Engine, config *TurnoRouteConfig) {
	engine.POST("/turno", config.TurnoHandler.CreateTurno)
	engine.GET("/turnos", config.TurnoHandler.ListTurnos)

	turno := engine.Group("/turno")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts
		turno.GET("/:id/pdf", config.TurnoHandler.Receipt)

		turno.GET("/:id", config.TurnoHandler.GetTurno)
		turno.PUT("/:id", config.TurnoHandler.UpdateTurno)
		turno.DELETE("/:id", config.TurnoHandler.DeleteTurno)
	}
}
