package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))
	l.now = func() time.Time { return time.Date(2025, 1, 6, 1, 0, 0, 0, time.UTC) }

	l.Log(context.Background(), AuditLog{
		Action:  "REMINDER_RUN",
		Message: "reminder selesai",
		Meta:    map[string]any{"sent": 3},
	})

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "audit", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	assert.Equal(t, "REMINDER_RUN", fields["action"])
	assert.Equal(t, "2025-01-06T01:00:00Z", fields["timestamp"])
}
