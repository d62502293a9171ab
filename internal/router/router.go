package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ApproveEvent(c *ginext.Context)
	Register(c *ginext.Context)
	GetTicket(c *ginext.Context)
	ApproveRegistration(c *ginext.Context)
	RejectRegistration(c *ginext.Context)
	RunReminders(c *ginext.Context)
}

// Middlewares groups the route-scoped chains the router needs beyond the
// global ones.
type Middlewares struct {
	Session   ginext.HandlerFunc
	Moderator ginext.HandlerFunc
	Cron      ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, mw Middlewares, global ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(global...)

	api := router.Group("/api")
	{
		// Public reads
		api.GET("/events", h.ListEvents)
		api.GET("/events/:slug", h.GetEvent)
		api.GET("/tickets/:code", h.GetTicket)

		// Authenticated
		authed := api.Group("", mw.Session)
		{
			authed.POST("/events", h.CreateEvent)
			authed.POST("/events/:slug/register", h.Register)
		}

		// Moderation
		admin := api.Group("/admin", mw.Session, mw.Moderator)
		{
			admin.POST("/events/:id/approve", h.ApproveEvent)
			admin.POST("/registrations/:id/approve", h.ApproveRegistration)
			admin.POST("/registrations/:id/reject", h.RejectRegistration)
		}

		// External time-based trigger
		api.GET("/reminders/run", mw.Cron, h.RunReminders)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
