package handler

import (
	"net/http"
	"time"

	"github.com/renzmar06/socialgolf-server/internal/domain/booking/service"
	"github.com/renzmar06/socialgolf-server/internal/pkg/middleware"
	"github.com/renzmar06/socialgolf-server/pkg/response"
	"github.com/renzmar06/socialgolf-server/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(s service.BookingService) *BookingHandler {
	return &BookingHandler{service: s}
}

type CreateServiceInput struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"min=0"`
	DurationMinutes int     `json:"durationMinutes" binding:"required,min=1"`
}

type UpdateServiceInput struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"durationMinutes"`
}

type CreateBookingInput struct {
	ServiceID     string     `json:"serviceId" binding:"required"`
	CustomerName  string     `json:"customerName" binding:"required"`
	CustomerEmail string     `json:"customerEmail" binding:"required,email"`
	ScheduledAt   *time.Time `json:"scheduledAt" binding:"required"`
	Notes         string     `json:"notes"`
}

type BookingStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

func (h *BookingHandler) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	svc, err := h.service.CreateService(c.GetString(middleware.CtxUserID), input.Name, input.Description, input.Price, input.DurationMinutes)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, svc)
}

func (h *BookingHandler) ListServices(c *gin.Context) {
	var p utils.Pagination
	c.ShouldBindQuery(&p)
	p.GetPageOffset()

	services, total, err := h.service.ListServices(p.Page, p.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, utils.PageResult{List: services, Total: total, Page: p.Page, Limit: p.Limit})
}

func (h *BookingHandler) UpdateService(c *gin.Context) {
	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.DurationMinutes != nil {
		fields["duration_minutes"] = *input.DurationMinutes
	}

	svc, err := h.service.UpdateService(c.Param("id"), fields)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, svc)
}

func (h *BookingHandler) DeleteService(c *gin.Context) {
	if err := h.service.DeleteService(c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "deleted")
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	booking, err := h.service.CreateBooking(input.ServiceID, input.CustomerName, input.CustomerEmail, input.Notes, input.ScheduledAt, time.Now())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, booking)
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	var p utils.Pagination
	c.ShouldBindQuery(&p)
	p.GetPageOffset()

	bookings, total, err := h.service.ListBookings(c.Query("serviceId"), c.Query("status"), p.Page, p.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, utils.PageResult{List: bookings, Total: total, Page: p.Page, Limit: p.Limit})
}

func (h *BookingHandler) SetBookingStatus(c *gin.Context) {
	var input BookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	if err := h.service.SetBookingStatus(c.Param("id"), input.Status); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "updated")
}
