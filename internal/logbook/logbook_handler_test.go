package logbook_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-magang/internal/logbook"
	logbookerrors "go-magang/internal/logbook/errors"
	logbookMock "go-magang/internal/logbook/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLogbookHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create requires activity", func(t *testing.T) {
		h := logbook.NewHandler(logbookMock.NewMockService(gomock.NewController(t)))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/logbook", bytes.NewBufferString(`{"duration":"1 jam"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		svc := logbookMock.NewMockService(gomock.NewController(t))
		h := logbook.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", "u-1")
		c.Request = httptest.NewRequest(http.MethodPost, "/logbook",
			bytes.NewBufferString(`{"activity":"Belajar Go","duration":"3 jam"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		svc.EXPECT().Create(gomock.Any(), "u-1", logbook.CreateLogbookRequest{Activity: "Belajar Go", Duration: "3 jam"}).
			Return(logbook.LogbookResponse{ID: "l-1", Activity: "Belajar Go"}, nil)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"l-1"`)
	})

	t.Run("delete not found", func(t *testing.T) {
		svc := logbookMock.NewMockService(gomock.NewController(t))
		h := logbook.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", "u-1")
		c.Params = gin.Params{{Key: "id", Value: "l-9"}}
		c.Request = httptest.NewRequest(http.MethodDelete, "/logbook/l-9", nil)

		svc.EXPECT().Delete(gomock.Any(), "u-1", "l-9").Return(logbookerrors.ErrLogbookNotFound)

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Logbook tidak ditemukan")
	})

	t.Run("list passes month and year", func(t *testing.T) {
		svc := logbookMock.NewMockService(gomock.NewController(t))
		h := logbook.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", "u-1")
		c.Request = httptest.NewRequest(http.MethodGet, "/logbook?month=2&year=2026", nil)

		svc.EXPECT().List(gomock.Any(), "u-1", logbook.Filter{Month: 2, Year: 2026}).Return([]logbook.LogbookResponse{}, nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
