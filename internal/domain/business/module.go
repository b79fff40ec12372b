package business

import (
	"github.com/renzmar06/socialgolf-server/internal/domain/business/handler"
	"github.com/renzmar06/socialgolf-server/internal/domain/business/repository"
	"github.com/renzmar06/socialgolf-server/internal/domain/business/service"
	"github.com/renzmar06/socialgolf-server/internal/pkg/middleware"
	"github.com/renzmar06/socialgolf-server/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// BusinessModule wires tenant accounts and authentication.
type BusinessModule struct{}

func init() {
	registry.Register(&BusinessModule{})
}

func (m *BusinessModule) Name() string {
	return "business"
}

// Accounts initialize first; everything else depends on their tokens.
func (m *BusinessModule) Priority() int {
	return 1
}

func (m *BusinessModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewBusinessRepository(ctx.DB)
	svc := service.NewBusinessService(repo)
	h := handler.NewBusinessHandler(svc)

	setupRoutes(ctx.Router, h)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.BusinessHandler) {
	g := r.Group("/businesses")

	g.POST("/register", h.Register)
	g.POST("/login", h.Login)

	authorized := g.Group("")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.GET("/me", h.GetProfile)
		authorized.PUT("/me", h.UpdateProfile)
	}
}
