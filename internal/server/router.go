// Package server exposes the application over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pmma/lifeskills/internal/app"
	"github.com/pmma/lifeskills/internal/logger"
)

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(a *app.App, log *logger.Logger, genTimeout time.Duration) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
	}))

	// Wrong-method requests on a known path must get a 405, not a 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	h := NewHandler(a, log, genTimeout)

	router.GET("/healthcheck", h.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/generate-lifeskill", h.GenerateLifeSkill)
		api.GET("/lifeskills", h.ListLifeSkills)
		api.GET("/lifeskills/:slug", h.GetLifeSkill)
		api.POST("/progress", h.RecordProgress)
		api.GET("/progress/:userId", h.GetProgress)
	}

	return router
}
