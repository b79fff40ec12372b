package promotion

import (
	"github.com/renzmar06/socialgolf-server/internal/domain/promotion/handler"
	"github.com/renzmar06/socialgolf-server/internal/domain/promotion/repository"
	"github.com/renzmar06/socialgolf-server/internal/domain/promotion/service"
	"github.com/renzmar06/socialgolf-server/internal/pkg/middleware"
	"github.com/renzmar06/socialgolf-server/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// PromotionModule wires the promotion feature.
type PromotionModule struct{}

func init() {
	registry.Register(&PromotionModule{})
}

func (m *PromotionModule) Name() string {
	return "promotion"
}

func (m *PromotionModule) Priority() int {
	return 10
}

func (m *PromotionModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewPromotionRepository(ctx.DB)
	svc := service.NewPromotionService(repo, ctx.Redis)
	h := handler.NewPromotionHandler(svc)

	setupRoutes(ctx.Router, h)
	registry.OnShutdown(svc.Shutdown)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.PromotionHandler) {
	g := r.Group("/promotions")

	// Public reads plus consumer-side view telemetry.
	g.GET("", h.ListPromotions)
	g.GET("/:id", h.GetPromotion)
	g.POST("/:id/view", h.TrackView)

	// Every mutation requires a business token.
	authorized := g.Group("")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.POST("", h.CreatePromotion)
		authorized.PUT("/:id", h.UpdatePromotion)
		authorized.DELETE("/:id", h.DeletePromotion)
		authorized.POST("/:id/pause", h.PausePromotion)
		authorized.POST("/:id/resume", h.ResumePromotion)
		authorized.POST("/:id/boost", h.BoostPromotion)
		authorized.POST("/boost/estimate", h.EstimateBoost)
		authorized.POST("/:id/redeem", h.RedeemPromotion)
		authorized.POST("/:id/qr", h.MarkQRGenerated)
	}
}
