// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atlas/internal/http/handlers"
	"atlas/internal/http/middleware"
	"atlas/internal/infra"
	"atlas/internal/modules/chat"
	"atlas/internal/modules/trip"
)

type RouterDeps struct {
	Trips    *trip.Service
	Chat     *chat.Service
	Verifier infra.TokenVerifier
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	tripHandler := handlers.NewTripHandler(deps.Trips)
	chatHandler := handlers.NewChatHandler(deps.Chat, deps.Trips)

	api := r.Group("/api", middleware.Auth(deps.Verifier))
	api.POST("/plan-trip", tripHandler.Plan)
	api.POST("/chat", chatHandler.Chat)
	api.GET("/trips", tripHandler.List)
	api.GET("/trips/:id", tripHandler.Get)
	api.GET("/trips/:id/pdf", tripHandler.PDF)
	api.DELETE("/trips/:id", tripHandler.Delete)

	return r
}
