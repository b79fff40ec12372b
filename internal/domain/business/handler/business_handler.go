package handler

import (
	"net/http"

	"github.com/renzmar06/socialgolf-server/internal/domain/business/service"
	"github.com/renzmar06/socialgolf-server/internal/pkg/middleware"
	"github.com/renzmar06/socialgolf-server/pkg/response"

	"github.com/gin-gonic/gin"
)

type BusinessHandler struct {
	service service.BusinessService
}

func NewBusinessHandler(s service.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: s}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Logo    string `json:"logo"`
}

type authResult struct {
	Business interface{} `json:"business"`
	Token    string      `json:"token"`
}

// Register creates a tenant account
// @Summary Register business
// @Tags Business
// @Accept json
// @Produce json
// @Param input body RegisterInput true "Account fields"
// @Success 201 {object} authResult
// @Router /businesses/register [post]
func (h *BusinessHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	business, token, err := h.service.Register(input.Name, input.Email, input.Password)
	if err != nil {
		if err == service.ErrEmailTaken {
			response.Error(c, http.StatusConflict, response.ErrBusinessExists, err.Error())
			return
		}
		response.FromError(c, err)
		return
	}

	response.Created(c, authResult{Business: business, Token: token})
}

func (h *BusinessHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	business, token, err := h.service.Login(input.Email, input.Password)
	if err != nil {
		if err == service.ErrBadCredentials {
			response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, err.Error())
			return
		}
		response.FromError(c, err)
		return
	}

	response.Success(c, authResult{Business: business, Token: token})
}

func (h *BusinessHandler) GetProfile(c *gin.Context) {
	business, err := h.service.GetProfile(c.GetString(middleware.CtxUserID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, business)
}

func (h *BusinessHandler) UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	business, err := h.service.UpdateProfile(c.GetString(middleware.CtxUserID), input.Name, input.Phone, input.Address, input.Logo)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, business)
}
