package response

import (
	"errors"
	"net/http"

	"github.com/renzmar06/socialgolf-server/pkg/errs"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success writes a 200 with the payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Created writes a 201 with the payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Error writes an explicit HTTP status plus business code.
func Error(c *gin.Context, httpCode int, errCode int, msg string) {
	c.JSON(httpCode, Response{
		Code:    errCode,
		Message: msg,
		Data:    nil,
	})
}

// FromError maps a service error onto a distinct HTTP status.
// Failures never surface as 200: validation -> 400, missing record -> 404,
// storage trouble -> 500, anything else -> 500.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		Error(c, http.StatusBadRequest, ErrInvalidParam, err.Error())
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		Error(c, http.StatusNotFound, ErrRecordNotFound, err.Error())
	case errors.Is(err, errs.ErrStorage):
		Error(c, http.StatusInternalServerError, ErrStorageUnhealthy, err.Error())
	default:
		Error(c, http.StatusInternalServerError, ErrServerInternal, err.Error())
	}
}
