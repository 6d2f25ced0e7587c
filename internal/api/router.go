// Package api exposes the league over HTTP and websockets.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rhuselid/gmcareer/internal/api/handlers"
	"github.com/rhuselid/gmcareer/internal/api/middleware"
	"github.com/rhuselid/gmcareer/internal/league"
	"github.com/rhuselid/gmcareer/internal/services"
	"github.com/rhuselid/gmcareer/pkg/config"
	"github.com/sirupsen/logrus"
)

// Dependencies bundles what the routes are served from.
type Dependencies struct {
	Config *config.Config
	League *league.Service
	Hub    *services.Hub
	DB     handlers.Pinger
	Logger logrus.FieldLogger
}

// NewRouter builds the engine with middleware, /api/v1 routes and /ws.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORS(deps.Config.CorsOrigins))

	SetupRoutes(router.Group("/api/v1"), deps)
	if deps.Hub != nil {
		router.GET("/ws", deps.Hub.HandleWebSocket)
	}
	return router
}

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler(deps.DB)
	teamHandler := handlers.NewTeamHandler(deps.League)
	playerHandler := handlers.NewPlayerHandler(deps.League)
	seasonHandler := handlers.NewSeasonHandler(deps.League)
	gameHandler := handlers.NewGameHandler(deps.League)

	group.GET("/health", healthHandler.GetHealth)

	// Team endpoints
	group.GET("/teams/:id", teamHandler.GetTeam)
	group.GET("/teams/:id/roster", teamHandler.GetRoster)
	group.GET("/teams/:id/record", teamHandler.GetRecord)
	group.GET("/teams/:id/schedule", teamHandler.GetSchedule)
	group.GET("/teams/:id/practice-plan", teamHandler.GetPracticePlan)
	group.PUT("/teams/:id/practice-plan", teamHandler.UpdatePracticePlan)
	group.GET("/divisions/:id/standings", teamHandler.GetStandings)

	// Player endpoints
	group.GET("/players/:id", playerHandler.GetPlayer)
	group.GET("/players/:id/position-fit", playerHandler.GetPositionFit)
	group.GET("/players/:id/development", playerHandler.GetDevelopment)

	// Season and game reads
	group.GET("/season/state", seasonHandler.GetState)
	group.GET("/games/:id", gameHandler.GetGame)

	// Simulation endpoints share one token bucket
	sim := group.Group("")
	sim.Use(middleware.RateLimit(deps.Config.APIRateLimit, deps.Config.APIRateBurst))
	{
		sim.POST("/season/sim-week", seasonHandler.SimulateWeek)
		sim.POST("/season/sim-all", seasonHandler.SimulateAll)
		sim.POST("/games/exhibition", gameHandler.SimulateExhibition)
	}
}
