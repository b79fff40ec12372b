package common

import (
	commonHandler "github.com/renzmar06/socialgolf-server/internal/pkg/common"
	"github.com/renzmar06/socialgolf-server/internal/pkg/middleware"
	"github.com/renzmar06/socialgolf-server/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// CommonModule registers cross-cutting routes, initialized last.
type CommonModule struct{}

func init() {
	registry.Register(&CommonModule{})
}

func (m *CommonModule) Name() string {
	return "common"
}

func (m *CommonModule) Priority() int {
	return 100
}

func (m *CommonModule) Init(ctx *registry.ModuleContext) error {
	setupRoutes(ctx.Router)
	return nil
}

func setupRoutes(r *gin.Engine) {
	r.POST("/upload", middleware.AuthMiddleware(), commonHandler.UploadFile)
}
