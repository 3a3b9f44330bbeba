package notification

import (
	"net/mail"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer()
	assert.NoError(t, err)

	t.Run("escapes html but not text", func(t *testing.T) {
		msg, err := r.Render(TemplateClockIn, "Clock In Berhasil - 02 March 2026", templateData{
			Title: "Clock In Berhasil", Name: "Budi <b>", Date: "02 March 2026", Time: "07:45",
			Status: "WFO", Distance: 12, Note: "WFO",
		}, mail.Address{Name: "Budi", Address: "budi@example.com"})

		assert.NoError(t, err)
		assert.True(t, msg.HasRecipients())
		assert.Contains(t, msg.HTMLContent, "Budi &lt;b&gt;")
		assert.Contains(t, msg.HTMLContent, "12 meter")
		assert.Contains(t, msg.TextContent, "Halo Budi <b>,")
	})

	t.Run("clock out reminder hides empty duration", func(t *testing.T) {
		msg, err := r.Render(TemplateReminderClockOut, "s", templateData{Title: "Reminder Clock Out", Name: "Sari", ClockInTime: "-"})

		assert.NoError(t, err)
		assert.NotContains(t, msg.HTMLContent, "Durasi Kerja")
		assert.False(t, msg.HasRecipients())
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := r.Render("nope", "s", templateData{})
		assert.Error(t, err)
	})
}

func TestWorkDuration(t *testing.T) {
	now := time.Date(2026, 3, 2, 16, 45, 0, 0, time.UTC)

	assert.Equal(t, "9 jam 5 menit", workDuration("07:40", now))
	assert.Equal(t, "", workDuration("-", now))
	assert.Equal(t, "", workDuration("17:00", now))
}
