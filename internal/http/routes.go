package http

import (
	"cinemaguess/internal/catalog"
	"cinemaguess/internal/http/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the stub collaborator endpoints onto the engine.
func RegisterRoutes(r *gin.Engine, cat *catalog.Catalog, version string) {
	gameHandler := handlers.NewGameHandler(cat)
	healthHandler := handlers.NewHealthHandler(version)

	r.GET("/health", healthHandler.Health)
	r.GET("/today-game", gameHandler.TodayGame)
	r.POST("/guess", gameHandler.Guess)
}
