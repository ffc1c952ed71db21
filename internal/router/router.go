package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CheckAvailability(c *ginext.Context)
	CreateIntent(c *ginext.Context)
	ApplyCoupon(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	RequestCancellation(c *ginext.Context)
	DecideCancellation(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	GetWallet(c *ginext.Context)
	IssueOTP(c *ginext.Context)
	Register(c *ginext.Context)
	GetUser(c *ginext.Context)
}

func InitRouter(mode string, h Handler, metrics http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Hotels
		api.GET("/hotels/:id/availability", h.CheckAvailability)
		api.POST("/hotels/:id/intents", h.CreateIntent)
		api.POST("/hotels/:id/bookings", h.CreateBooking)

		// Payments
		api.POST("/intents/:id/coupon", h.ApplyCoupon)

		// Bookings
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.RequestCancellation)
		api.POST("/bookings/:id/decision", h.DecideCancellation)

		// Users
		api.POST("/otp", h.IssueOTP)
		api.POST("/users", h.Register)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)
		api.GET("/users/:id/wallet", h.GetWallet)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
