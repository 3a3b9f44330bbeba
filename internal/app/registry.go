package app

import (
	"database/sql"

	"go-magang/internal/attendance"
	"go-magang/internal/auth"
	"go-magang/internal/config"
	"go-magang/internal/geofence"
	"go-magang/internal/logbook"
	"go-magang/internal/mentor"
	"go-magang/internal/messaging/kafka"
	"go-magang/internal/middleware"
	"go-magang/internal/office"
	"go-magang/internal/rbac"
	"go-magang/internal/rbac/infra"
	"go-magang/internal/schedule"
	"go-magang/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func officeFallback(cfg config.OfficeConfig) geofence.OfficeConfig {
	return geofence.OfficeConfig{
		Location:          geofence.GeoPoint{Latitude: cfg.Latitude, Longitude: cfg.Longitude},
		MaxDistanceMeters: cfg.MaxDistanceMeters,
		Name:              cfg.Name,
	}
}

func registerModules(
	api *gin.RouterGroup,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	loc := cfg.Location()
	fallback := officeFallback(cfg.Office)

	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	mentorRepo := mentor.NewRepository(gormDB)
	officeRepo := office.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	logbookRepo := logbook.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	mentorService := mentor.NewService(db, mentorRepo, userRepo, logger)
	authService := auth.NewService(userRepo, cfg.JWT.Secret, cfg.JWT.TTL, logger)
	userService := user.NewService(userRepo, mentorService, logger)
	officeProvider := office.NewProvider(officeRepo, rdb, cfg.Office.CacheTTL, fallback, logger)
	officeService := office.NewService(db, officeRepo, officeProvider, fallback, logger)
	scheduleService := schedule.NewService(scheduleRepo, logger)
	attendanceService := attendance.NewService(
		db, attendanceRepo, outboxRepo, officeProvider, scheduleService, mentorService, loc, logger,
	)
	logbookService := logbook.NewService(db, logbookRepo, mentorService, logbook.Options{
		DailyLimit: cfg.Logbook.DailyLimit,
		Location:   loc,
	}, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), cfg.JWT.TTL)
	rbacHandler := rbac.NewHandler(rbacService)
	userHandler := user.NewHandler(userService, logger)
	mentorHandler := mentor.NewHandler(mentorService)
	officeHandler := office.NewHandler(officeService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	logbookHandler := logbook.NewHandler(logbookService)

	// --- Routes ---
	authMiddleware := middleware.AuthMiddleware(cfg.JWT.Secret)
	protected := api.Group("", authMiddleware, middleware.ContextLogger(logger))

	auth.RegisterRoutes(api, authHandler, authMiddleware)
	rbac.RegisterRoutes(protected, rbacHandler)
	user.RegisterRoutes(protected, userHandler, rbacService)
	mentor.RegisterRoutes(protected, mentorHandler, rbacService)
	office.RegisterRoutes(protected, officeHandler, rbacService)
	schedule.RegisterRoutes(protected, scheduleHandler, rbacService)
	attendance.RegisterRoutes(protected, attendanceHandler, rbacService, middleware.Idempotency(rdb, idempotencyTTL))
	logbook.RegisterRoutes(protected, logbookHandler, rbacService)

	return nil
}
