package meta

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turnero/internal/shared/version"
)

type EndpointInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type ServiceInfo struct {
	Service   string         `json:"service"`
	Version   string         `json:"version"`
	Endpoints []EndpointInfo `json:"endpoints"`
}

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Index handles GET / with a short service description and endpoint list.
func (h *MetaHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, ServiceInfo{
		Service: "turnero",
		Version: version.Version,
		Endpoints: []EndpointInfo{
			{Method: "POST", Path: "/turno", Description: "Solicitar un turno"},
			{Method: "GET", Path: "/turnos", Description: "Listar todos los turnos"},
			{Method: "GET", Path: "/turno/:id", Description: "Consultar un turno"},
			{Method: "GET", Path: "/turno/:id/pdf", Description: "Descargar comprobante PDF"},
			{Method: "PUT", Path: "/turno/:id", Description: "Actualizar un turno"},
			{Method: "DELETE", Path: "/turno/:id", Description: "Eliminar un turno"},
			{Method: "GET", Path: "/panel", Description: "Panel de turnos"},
		},
	})
}

// Health handles GET /health
func (h *MetaHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
