package registry

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ModuleContext carries the shared dependencies handed to each module.
type ModuleContext struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Router *gin.Engine
}

// Module is a self-registering feature unit (routes + wiring).
type Module interface {
	// Name returns the module name.
	Name() string

	// Init performs dependency injection and route registration.
	Init(ctx *ModuleContext) error

	// Priority orders initialization (lower runs first); the business
	// module initializes before the features that require its tokens.
	Priority() int
}

var (
	moduleRegistry = make(map[string]Module)
	shutdownHooks  []func()
)

// Register adds a module; called from each module's init().
func Register(module Module) {
	moduleRegistry[module.Name()] = module
}

// OnShutdown queues a hook for Shutdown; modules register cleanup for
// background work (queue drains, pool stops) during their Init.
func OnShutdown(fn func()) {
	shutdownHooks = append(shutdownHooks, fn)
}

// Shutdown runs the registered hooks in reverse registration order.
func Shutdown() {
	for i := len(shutdownHooks) - 1; i >= 0; i-- {
		shutdownHooks[i]()
	}
}

// GetModules returns all registered modules.
func GetModules() map[string]Module {
	return moduleRegistry
}

// InitModules initializes every registered module in priority order.
func InitModules(ctx *ModuleContext) error {
	modules := make([]Module, 0, len(moduleRegistry))
	for _, m := range moduleRegistry {
		modules = append(modules, m)
	}

	// Handful of modules, a simple selection sort is plenty.
	for i := 0; i < len(modules); i++ {
		for j := i + 1; j < len(modules); j++ {
			if modules[i].Priority() > modules[j].Priority() {
				modules[i], modules[j] = modules[j], modules[i]
			}
		}
	}

	for _, module := range modules {
		if err := module.Init(ctx); err != nil {
			return err
		}
	}

	return nil
}
