package handler

import (
	"errors"
	"net/http"

	"github.com/renzmar06/socialgolf-server/internal/domain/product/service"
	"github.com/renzmar06/socialgolf-server/internal/pkg/middleware"
	"github.com/renzmar06/socialgolf-server/pkg/response"
	"github.com/renzmar06/socialgolf-server/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{service: svc}
}

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price" binding:"required"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
}

type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

type RestockInput struct {
	Delta int `json:"delta" binding:"required"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	product, err := h.service.CreateProduct(service.CreateParams{
		BusinessID:  c.GetString(middleware.CtxUserID),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		Images:      input.Images,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, product)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.service.GetProduct(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, product)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var page utils.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	products, total, err := h.service.ListProducts(
		c.Query("keyword"), c.Query("category"), page.Page, page.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, utils.PageResult{List: products, Total: total, Page: page.Page, Limit: page.Limit})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var input UpdateProductInput
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
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Stock != nil {
		fields["stock"] = *input.Stock
	}

	product, err := h.service.UpdateProduct(c.Param("id"), fields)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.service.DeleteProduct(c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *ProductHandler) Restock(c *gin.Context) {
	var input RestockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	product, err := h.service.Restock(c.Param("id"), input.Delta)
	if err != nil {
		if errors.Is(err, service.ErrOutOfStock) {
			response.Error(c, http.StatusConflict, response.ErrInvalidParam, "insufficient stock")
			return
		}
		response.FromError(c, err)
		return
	}
	response.Success(c, product)
}
