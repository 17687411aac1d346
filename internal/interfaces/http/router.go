package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"turnero/internal/application/turno/usecases"
	"turnero/internal/infrastructure/config"
	"turnero/internal/infrastructure/receipt"
	"turnero/internal/infrastructure/repository"
	"turnero/internal/infrastructure/services"
	metahandlers "turnero/internal/interfaces/http/handlers/meta"
	turnohandlers "turnero/internal/interfaces/http/handlers/turno"
	"turnero/internal/interfaces/http/middleware"
	"turnero/internal/interfaces/http/routes"
	"turnero/internal/shared/db"
	"turnero/internal/shared/logger"
)

const panelFile = "./web/static/panel.html"

// Router represents the HTTP router configuration
type Router struct {
	engine       *gin.Engine
	turnoHandler *turnohandlers.TurnoHandler
	metaHandler  *metahandlers.MetaHandler
	config       *config.Config
	logger       logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	turnoRepo := repository.NewTurnoRepository(database)
	allocator := services.NewSequenceLabelAllocator(database)
	txManager := db.NewTransactionManager(database)
	renderer := receipt.NewRenderer()

	createTurnoUC := usecases.NewCreateTurnoUseCase(turnoRepo, allocator, txManager, log)
	getTurnoUC := usecases.NewGetTurnoUseCase(turnoRepo, log)
	listTurnosUC := usecases.NewListTurnosUseCase(turnoRepo, log)
	updateTurnoUC := usecases.NewUpdateTurnoUseCase(turnoRepo, log)
	deleteTurnoUC := usecases.NewDeleteTurnoUseCase(turnoRepo, log)
	renderReceiptUC := usecases.NewRenderReceiptUseCase(turnoRepo, renderer, log)

	turnoHandler := turnohandlers.NewTurnoHandler(
		createTurnoUC,
		getTurnoUC,
		listTurnosUC,
		updateTurnoUC,
		deleteTurnoUC,
		renderReceiptUC,
	)

	return &Router{
		engine:       engine,
		turnoHandler: turnoHandler,
		metaHandler:  metahandlers.NewMetaHandler(),
		config:       cfg,
		logger:       log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CustomLogger(r.logger))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(r.config.Server.AllowedOrigins))

	routes.SetupMetaRoutes(r.engine, &routes.MetaRouteConfig{
		MetaHandler: r.metaHandler,
		PanelFile:   panelFile,
	})

	routes.SetupTurnoRoutes(r.engine, &routes.TurnoRouteConfig{
		TurnoHandler: r.turnoHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
