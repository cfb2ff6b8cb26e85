package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fadelaryap/agrione-v1-sub000/api/handler"
)

type Handlers struct {
	Planning  *apiHandler.PlanningHandler
	Season    *apiHandler.SeasonHandler
	WorkOrder *apiHandler.WorkOrderHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Planning routes: catalog and template construction
	r.GET("/api/v1/planning/catalog", handlers.Planning.GetCatalog)
	r.GET("/api/v1/planning/templates/default", handlers.Planning.GetDefaultTemplate)
	r.POST("/api/v1/planning/templates/recalculate", handlers.Planning.Recalculate)
	r.POST("/api/v1/planning/templates/activities", handlers.Planning.AddActivity)
	r.GET("/api/v1/planning/templates", handlers.Planning.ListTemplates)
	r.POST("/api/v1/planning/templates", authMiddleware(handlers.Planning.SaveTemplate))
	r.GET("/api/v1/planning/templates/{id}", handlers.Planning.GetTemplate)
	r.GET("/api/v1/planning/templates/{id}/load", handlers.Planning.LoadTemplate)
	r.DELETE("/api/v1/planning/templates/{id}", authMiddleware(handlers.Planning.DeleteTemplate))

	// Season routes
	r.GET("/api/v1/seasons", handlers.Season.ListSeasons)
	r.POST("/api/v1/seasons", authMiddleware(handlers.Season.Materialize))
	r.POST("/api/v1/seasons/batch", authMiddleware(handlers.Season.MaterializeBatch))
	r.GET("/api/v1/seasons/{id}", handlers.Season.GetSeason)
	r.POST("/api/v1/seasons/{id}/complete", authMiddleware(handlers.Season.CompleteSeason))
	r.DELETE("/api/v1/seasons/{id}", authMiddleware(handlers.Season.DeleteSeason))

	// Work order routes
	r.GET("/api/v1/work-orders", handlers.WorkOrder.ListWorkOrders)
	r.GET("/api/v1/work-orders/schedule", handlers.WorkOrder.GetSchedule)
	r.GET("/api/v1/work-orders/{id}", handlers.WorkOrder.GetWorkOrder)
	r.PUT("/api/v1/work-orders/{id}", authMiddleware(handlers.WorkOrder.UpdateWorkOrder))
	r.DELETE("/api/v1/work-orders/{id}", authMiddleware(handlers.WorkOrder.DeleteWorkOrder))

	return r
}
