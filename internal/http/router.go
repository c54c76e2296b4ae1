package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "backoffice/internal/config"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))

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

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Trips
		trips := api.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.GET("/:id", h.GetTripByID)
		trips.GET("/:id/costs", h.GetTripCosts)
		trips.DELETE("/:id", h.DeleteTrip)

		// Trip wizard
		wiz := api.Group("/wizard")
		wiz.POST("", h.StartWizard)
		wiz.GET("/:sid", h.GetWizardState)
		wiz.PUT("/:sid/form", h.UpdateWizardForm)
		wiz.POST("/:sid/next", h.WizardNext)
		wiz.POST("/:sid/previous", h.WizardPrevious)
		wiz.POST("/:sid/import-transport", h.ImportWizardTransport)
		wiz.PUT("/:sid/accommodation/:index/currency", h.SetWizardCurrency)
		wiz.PUT("/:sid/accommodation/:index/exchange-rate", h.SetWizardExchangeRate)
		wiz.GET("/:sid/summary", h.GetWizardSummary)
		wiz.POST("/:sid/save", h.SaveWizard)
		wiz.DELETE("/:sid", h.CancelWizard)
	}

	h.SetRouter(r)
	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Accept", "Origin", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        24 * time.Hour,
	}

	allowAll := false
	for _, o := range env.CORSOrigins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = env.CORSOrigins
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}
