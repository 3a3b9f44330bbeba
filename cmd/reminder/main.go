package main

import (
	"context"
	"flag"
	"log"

	"go-magang/internal/app"
	"go-magang/internal/bootstrap"
	"go-magang/internal/config"

	"go.uber.org/zap"
)

func main() {
	kind := flag.String("type", "", "clock_in | clock_out, kosong untuk deteksi dari jam sekarang")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := bootstrap.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	res, err := app.RunReminder(cfg, *kind)
	if err != nil {
		logger.Fatal("run reminder failed", zap.Error(err))
	}

	bootstrap.NewStdoutAuditLogger(logger).Log(context.Background(), bootstrap.AuditLog{
		Action:  "REMINDER_RUN",
		Message: "Proses reminder absensi selesai",
		Meta: map[string]any{
			"type":              res.Type,
			"sent":              res.Sent,
			"errors":            res.Errors,
			"missing_clock_in":  res.MissingClockIn,
			"missing_clock_out": res.MissingClockOut,
		},
	})
}
