package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/handlers"
	"github.com/patomosley/barbar-shop/internal/middleware"
	"github.com/patomosley/barbar-shop/internal/notify"
	"github.com/patomosley/barbar-shop/internal/session"
)

// RegisterRoutes monta as rotas públicas e o painel protegido.
func RegisterRoutes(
	r *gin.Engine,
	api *backend.Client,
	sessions *session.Store,
	flashes *notify.Store,
	secret string,
	logger zerolog.Logger,
) {
	authHandler := handlers.NewAuthHandler(api, sessions, flashes, secret, logger)
	adminHandler := handlers.NewAdminHandler(api, sessions, flashes, logger)
	appointmentHandler := handlers.NewAppointmentHandler(api, flashes, logger)
	clientHandler := handlers.NewClientHandler(api, flashes, logger)
	serviceHandler := handlers.NewServiceHandler(api, flashes, logger)
	scheduleHandler := handlers.NewScheduleHandler(api, flashes, logger)
	bookingHandler := handlers.NewBookingHandler(api, flashes, logger)

	r.GET("/", authHandler.Root)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/booking", bookingHandler.Page)
	r.POST("/booking", bookingHandler.Create)

	authorized := r.Group("/", middleware.Auth(secret, sessions))
	{
		authorized.POST("/logout", authHandler.Logout)

		admin := authorized.Group("/admin")
		{
			admin.GET("/:section", adminHandler.Section)
			admin.POST("/appointments/:id/status", appointmentHandler.UpdateStatus)
			admin.POST("/clients/:id/delete", clientHandler.Delete)
			admin.POST("/clients/:id/edit", clientHandler.EditStub)
			admin.POST("/services", serviceHandler.Create)
			admin.POST("/services/:id/delete", serviceHandler.Delete)
			admin.POST("/services/:id/edit", serviceHandler.EditStub)
			admin.POST("/schedule", scheduleHandler.Save)
		}
	}
}
