package notification_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"testing"

	"go-magang/internal/notification"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSendgridSender_Send(t *testing.T) {
	msg := notification.Message{
		To:          []mail.Address{{Name: "Budi", Address: "budi@example.com"}},
		Subject:     "Clock In Berhasil - 02 March 2026",
		HTMLContent: "<p>hai</p>",
		TextContent: "hai",
	}
	from := mail.Address{Name: "Sistem Absensi Magang", Address: "noreply@magang.local"}

	t.Run("posts v3 payload", func(t *testing.T) {
		var gotAuth string
		var body map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			assert.Equal(t, "/v3/mail/send", r.URL.Path)
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &body)
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		s := notification.NewSendgridSender("sg-key", from, srv.URL, zap.NewNop())
		err := s.Send(context.Background(), msg)

		assert.NoError(t, err)
		assert.Equal(t, "Bearer sg-key", gotAuth)
		assert.Equal(t, "noreply@magang.local", body["from"].(map[string]any)["email"])
	})

	t.Run("error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		s := notification.NewSendgridSender("bad", from, srv.URL, zap.NewNop())
		assert.Error(t, s.Send(context.Background(), msg))
	})

	t.Run("no recipients is a no-op", func(t *testing.T) {
		s := notification.NewSendgridSender("k", from, "http://127.0.0.1:1", zap.NewNop())
		assert.NoError(t, s.Send(context.Background(), notification.Message{Subject: "x"}))
	})
}
