package app

import (
	"database/sql"
	"net/http"
	"time"

	"go-magang/internal/config"
	"go-magang/internal/middleware"
	"go-magang/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	connectRetries = 5
	idempotencyTTL = 10 * time.Minute
)

// BuildApp connects the infrastructure and mounts every module under /api.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L().Named("app.api")

	// 1. Setup Infrastructure
	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, connectRetries)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	// 2. Global middleware
	router.Use(middleware.RequestID())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().In(cfg.Location()).Format(time.RFC3339)})
	})

	// 3. Register Modules & Routes
	return registerModules(router.Group("/api"), cfg, sqlDB, gormDB, rdb, logger)
}

func connectDatabase(cfg config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, connectRetries)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}
