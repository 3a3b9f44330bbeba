package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-magang/internal/config"
	"go-magang/internal/events"
	"go-magang/internal/mentor"
	"go-magang/internal/messaging/kafka/consumer"
	"go-magang/internal/notification"
	"go-magang/internal/schedule"
	"go-magang/internal/shared/connection"
	"go-magang/internal/user"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, connectRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	notifier, err := buildNotifier(cfg, gormDB, rdb, logger)
	if err != nil {
		return err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.AttendanceRecordedTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeAttendanceRecorded(ctx, reader, notifier, consumer.DefaultRetryPolicy, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}

// buildNotifier: rdb may be nil, the reminder batch runs without redis.
func buildNotifier(cfg config.Config, gormDB *gorm.DB, rdb redis.Cmdable, logger *zap.Logger) (notification.Notifier, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	renderer, err := notification.NewRenderer()
	if err != nil {
		return nil, err
	}
	userRepo := user.NewRepository(gormDB)
	mentorService := mentor.NewService(sqlDB, mentor.NewRepository(gormDB), userRepo, logger)
	scheduleService := schedule.NewService(schedule.NewRepository(gormDB), logger)

	return notification.NewNotifier(
		userRepo,
		mentorService,
		scheduleService,
		renderer,
		notification.NewSender(cfg.Mail, logger),
		rdb,
		cfg.Location(),
		logger,
	), nil
}
