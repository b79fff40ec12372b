package booking

import (
	"github.com/renzmar06/socialgolf-server/internal/domain/booking/handler"
	"github.com/renzmar06/socialgolf-server/internal/domain/booking/repository"
	"github.com/renzmar06/socialgolf-server/internal/domain/booking/service"
	"github.com/renzmar06/socialgolf-server/internal/pkg/middleware"
	"github.com/renzmar06/socialgolf-server/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

type BookingModule struct{}

func init() {
	registry.Register(&BookingModule{})
}

func (m *BookingModule) Name() string {
	return "booking"
}

func (m *BookingModule) Priority() int {
	return 30
}

func (m *BookingModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewBookingRepository(ctx.DB)
	svc := service.NewBookingService(repo)
	h := handler.NewBookingHandler(svc)

	setupRoutes(ctx.Router, h)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.BookingHandler) {
	services := r.Group("/services")
	services.GET("", h.ListServices)

	servicesAuth := services.Group("")
	servicesAuth.Use(middleware.AuthMiddleware())
	{
		servicesAuth.POST("", h.CreateService)
		servicesAuth.PUT("/:id", h.UpdateService)
		servicesAuth.DELETE("/:id", h.DeleteService)
	}

	bookings := r.Group("/bookings")
	// Customers book without an account; businesses manage statuses.
	bookings.POST("", h.CreateBooking)

	bookingsAuth := bookings.Group("")
	bookingsAuth.Use(middleware.AuthMiddleware())
	{
		bookingsAuth.GET("", h.ListBookings)
		bookingsAuth.PUT("/:id/status", h.SetBookingStatus)
	}
}
