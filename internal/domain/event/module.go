package event

import (
	"github.com/renzmar06/socialgolf-server/internal/domain/event/handler"
	"github.com/renzmar06/socialgolf-server/internal/domain/event/repository"
	"github.com/renzmar06/socialgolf-server/internal/domain/event/service"
	"github.com/renzmar06/socialgolf-server/internal/pkg/middleware"
	"github.com/renzmar06/socialgolf-server/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

type EventModule struct{}

func init() {
	registry.Register(&EventModule{})
}

func (m *EventModule) Name() string {
	return "event"
}

func (m *EventModule) Priority() int {
	return 20
}

func (m *EventModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewEventRepository(ctx.DB)
	svc := service.NewEventService(repo)
	h := handler.NewEventHandler(svc)

	setupRoutes(ctx.Router, h)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.EventHandler) {
	g := r.Group("/events")

	g.GET("", h.ListEvents)
	g.GET("/:id", h.GetEvent)

	authorized := g.Group("")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.POST("", h.CreateEvent)
		authorized.PUT("/:id", h.UpdateEvent)
		authorized.DELETE("/:id", h.DeleteEvent)
	}
}
