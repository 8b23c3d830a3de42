package handlers

import (
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vent_sizing/internal/logger"
	"vent_sizing/internal/service"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Evaluation stream over WebSocket, same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerSystemRoutes(api)
		h.registerEvaluationRoutes(api)
		h.registerCatalogRoutes(api)
		h.registerSiteRoutes(api)
		h.registerReportRoutes(api)
	}
}

func (h *Handler) registerSystemRoutes(api *gin.RouterGroup) {
	systems := api.Group("/systems")
	{
		systems.POST("/evaluate", h.evaluateSystem)
	}
}

func (h *Handler) registerEvaluationRoutes(api *gin.RouterGroup) {
	evals := api.Group("/evaluations")
	{
		evals.GET("/", h.listEvaluations)
		evals.GET("/latest", h.latestEvaluation)
		evals.GET("/:id", h.getEvaluation)
	}
}

func (h *Handler) registerCatalogRoutes(api *gin.RouterGroup) {
	cat := api.Group("/catalog")
	{
		cat.GET("/curves", h.listCurves)
		cat.GET("/series", h.listSeries)
		cat.GET("/series/:name/models", h.listSeriesModels)
		cat.POST("/import", h.importCatalog)
	}
}

func (h *Handler) registerSiteRoutes(api *gin.RouterGroup) {
	api.GET("/elevation", h.lookupElevation)
}

func (h *Handler) registerReportRoutes(api *gin.RouterGroup) {
	reports := api.Group("/reports")
	{
		reports.GET("/pdf", h.submittalPDF)
	}
}
