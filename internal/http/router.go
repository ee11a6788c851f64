package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/Zephyls/CW7-S27970/internal/config"
	h "github.com/Zephyls/CW7-S27970/internal/http/handlers"
	"github.com/Zephyls/CW7-S27970/internal/http/middleware"
)

func NewRouter(env intconfig.Env, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	clients := h.NewClientHandler(db)
	trips := h.NewTripHandler(db)
	docs := h.NewDocsHandler(db)
	system := h.NewSystemHandler(db)

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)
		api.GET("/db-check", system.DBCheck)

		api.POST("/clients", clients.CreateClient)
		api.GET("/clients/:id/trips", clients.ListClientTrips)
		api.PUT("/clients/:id/trips/:tripId", clients.RegisterClientToTrip)
		api.DELETE("/clients/:id/trips/:tripId", clients.UnregisterClientFromTrip)
		api.GET("/clients/:id/trips/:tripId/confirmation", docs.GetConfirmationPDF)

		api.GET("/trips", trips.ListTrips)
	}

	return r
}
