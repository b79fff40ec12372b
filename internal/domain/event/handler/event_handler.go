package handler

import (
	"net/http"
	"time"

	"github.com/renzmar06/socialgolf-server/internal/domain/event/service"
	"github.com/renzmar06/socialgolf-server/internal/pkg/middleware"
	"github.com/renzmar06/socialgolf-server/pkg/response"
	"github.com/renzmar06/socialgolf-server/pkg/utils"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(s service.EventService) *EventHandler {
	return &EventHandler{service: s}
}

type CreateEventInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartsAt    *time.Time `json:"startsAt" binding:"required"`
	Capacity    int        `json:"capacity"`
	CoverImage  string     `json:"coverImage"`
}

type UpdateEventInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartsAt    *time.Time `json:"startsAt"`
	Capacity    *int       `json:"capacity"`
	CoverImage  *string    `json:"coverImage"`
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var input CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	event, err := h.service.CreateEvent(service.CreateParams{
		BusinessID:  c.GetString(middleware.CtxUserID),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		Capacity:    input.Capacity,
		CoverImage:  input.CoverImage,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, event)
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	var p utils.Pagination
	c.ShouldBindQuery(&p)
	p.GetPageOffset()

	events, total, err := h.service.ListEvents(c.Query("search"), p.Page, p.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, utils.PageResult{
		List:  events,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	})
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.service.GetEvent(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var input UpdateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	event, err := h.service.UpdateEvent(c.Param("id"), service.UpdateParams{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		Capacity:    input.Capacity,
		CoverImage:  input.CoverImage,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.service.DeleteEvent(c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "deleted")
}
