package handler

import (
	"errors"
	"net/http"

	"github.com/renzmar06/socialgolf-server/internal/domain/post/service"
	"github.com/renzmar06/socialgolf-server/internal/pkg/middleware"
	"github.com/renzmar06/socialgolf-server/pkg/response"
	"github.com/renzmar06/socialgolf-server/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	service service.PostService
}

func NewPostHandler(svc service.PostService) *PostHandler {
	return &PostHandler{service: svc}
}

type CreatePostInput struct {
	Content string   `json:"content" binding:"required"`
	Media   []string `json:"media"`
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var input CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	author := service.Author{
		ID:    c.GetString(middleware.CtxUserID),
		Name:  c.GetString(middleware.CtxName),
		Email: c.GetString(middleware.CtxEmail),
	}
	post, err := h.service.CreatePost(author, input.Content, input.Media)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, post)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.service.GetPost(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, post)
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	var page utils.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	posts, total, err := h.service.ListPosts(c.Query("authorId"), page.Page, page.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, utils.PageResult{List: posts, Total: total, Page: page.Page, Limit: page.Limit})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	err := h.service.DeletePost(c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		if errors.Is(err, service.ErrNotAuthor) {
			response.Error(c, http.StatusForbidden, response.ErrInvalidParam, "only the author can delete a post")
			return
		}
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *PostHandler) LikePost(c *gin.Context) {
	if err := h.service.LikePost(c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}
