package post

import (
	"github.com/renzmar06/socialgolf-server/internal/domain/post/handler"
	"github.com/renzmar06/socialgolf-server/internal/domain/post/repository"
	"github.com/renzmar06/socialgolf-server/internal/domain/post/service"
	"github.com/renzmar06/socialgolf-server/internal/pkg/middleware"
	"github.com/renzmar06/socialgolf-server/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

type PostModule struct{}

func init() {
	registry.Register(&PostModule{})
}

func (m *PostModule) Name() string {
	return "post"
}

func (m *PostModule) Priority() int {
	return 50
}

func (m *PostModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewPostRepository(ctx.DB)
	svc := service.NewPostService(repo)
	h := handler.NewPostHandler(svc)

	setupRoutes(ctx.Router, h)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.PostHandler) {
	g := r.Group("/posts")

	g.GET("", h.ListPosts)
	g.GET("/:id", h.GetPost)
	g.POST("/:id/like", h.LikePost)

	authorized := g.Group("")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.POST("", h.CreatePost)
		authorized.DELETE("/:id", h.DeletePost)
	}
}
