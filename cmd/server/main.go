package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renzmar06/socialgolf-server/internal/pkg/config"
	"github.com/renzmar06/socialgolf-server/internal/pkg/middleware"
	"github.com/renzmar06/socialgolf-server/internal/pkg/registry"
	"github.com/renzmar06/socialgolf-server/internal/pkg/uploader"
	"github.com/renzmar06/socialgolf-server/pkg/database"
	"github.com/renzmar06/socialgolf-server/pkg/logger"

	// Domain modules self-register via init().
	_ "github.com/renzmar06/socialgolf-server/internal/domain/booking"
	_ "github.com/renzmar06/socialgolf-server/internal/domain/business"
	_ "github.com/renzmar06/socialgolf-server/internal/domain/common"
	_ "github.com/renzmar06/socialgolf-server/internal/domain/event"
	_ "github.com/renzmar06/socialgolf-server/internal/domain/post"
	_ "github.com/renzmar06/socialgolf-server/internal/domain/product"
	_ "github.com/renzmar06/socialgolf-server/internal/domain/promotion"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.GlobalConfig

	if err := logger.Init(cfg.App.Debug); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	db := database.InitDatabase()
	rdb := database.InitRedis()

	if err := uploader.InitUploader(); err != nil {
		logger.Log.Fatal("uploader init failed", zap.Error(err))
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Upload.Driver == "local" {
		r.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)
	}

	if err := registry.InitModules(&registry.ModuleContext{
		DB:     db,
		Redis:  rdb,
		Router: r,
	}); err != nil {
		logger.Log.Fatal("module init failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("forced shutdown", zap.Error(err))
	}

	// Drain background work before the connections go away.
	registry.Shutdown()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rdb.Close()
}
