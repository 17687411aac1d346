package routes

import (
	"github.com/gin-gonic/gin"

	metahandlers "turnero/internal/interfaces/http/handlers/meta"
)

type MetaRouteConfig struct {
	MetaHandler *metahandlers.MetaHandler
	PanelFile   string
}

func SetupMetaRoutes(engine *gin.Engine, config *MetaRouteConfig) {
	engine.GET("/", config.MetaHandler.Index)
	engine.GET("/health", config.MetaHandler.Health)
	engine.StaticFile("/panel", config.PanelFile)
}
