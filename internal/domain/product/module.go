package product

import (
	"github.com/renzmar06/socialgolf-server/internal/domain/product/handler"
	"github.com/renzmar06/socialgolf-server/internal/domain/product/repository"
	"github.com/renzmar06/socialgolf-server/internal/domain/product/service"
	"github.com/renzmar06/socialgolf-server/internal/pkg/middleware"
	"github.com/renzmar06/socialgolf-server/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

type ProductModule struct{}

func init() {
	registry.Register(&ProductModule{})
}

func (m *ProductModule) Name() string {
	return "product"
}

func (m *ProductModule) Priority() int {
	return 40
}

func (m *ProductModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewProductRepository(ctx.DB)
	svc := service.NewProductService(repo)
	h := handler.NewProductHandler(svc)

	setupRoutes(ctx.Router, h)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.ProductHandler) {
	g := r.Group("/products")

	g.GET("", h.ListProducts)
	g.GET("/:id", h.GetProduct)

	authorized := g.Group("")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.POST("", h.CreateProduct)
		authorized.PUT("/:id", h.UpdateProduct)
		authorized.DELETE("/:id", h.DeleteProduct)
		authorized.POST("/:id/restock", h.Restock)
	}
}
