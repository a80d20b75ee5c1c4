package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	SetEventStatus(c *ginext.Context)
	JoinEvent(c *ginext.Context)
	LeaveEvent(c *ginext.Context)
	GetParticipation(c *ginext.Context)
	ListCities(c *ginext.Context)
	ListCategories(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public reads
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/cities", h.ListCities)
		api.GET("/categories", h.ListCategories)

		// Authenticated mutations
		authed := api.Group("", auth)
		{
			authed.POST("/events", h.CreateEvent)
			authed.PATCH("/events/:id", h.UpdateEvent)
			authed.POST("/events/:id/status", h.SetEventStatus)
			authed.POST("/events/:id/join", h.JoinEvent)
			authed.POST("/events/:id/leave", h.LeaveEvent)
			authed.GET("/events/:id/participation", h.GetParticipation)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
