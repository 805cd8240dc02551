package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEventBookings(c *ginext.Context)
	BookEvent(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	DownloadTicket(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW, adminMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// Public event catalogue
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		authed := api.Group("", authMW)
		{
			// Bookings
			authed.POST("/events/:id/book", h.BookEvent)
			authed.GET("/events/:id/bookings", h.ListEventBookings)
			authed.GET("/bookings", h.ListMyBookings)
			authed.GET("/bookings/:id", h.GetBooking)
			authed.GET("/bookings/:id/ticket", h.DownloadTicket)
			authed.DELETE("/bookings/:id", h.CancelBooking)

			// Event management
			admin := authed.Group("", adminMW)
			{
				admin.POST("/events", h.CreateEvent)
				admin.PUT("/events/:id", h.UpdateEvent)
				admin.DELETE("/events/:id", h.DeleteEvent)
			}
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
