package attendance_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-magang/internal/attendance"
	attendanceerrors "go-magang/internal/attendance/errors"
	attendanceMock "go-magang/internal/attendance/mock"
	"go-magang/internal/mentor"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestAttendanceHandler_ClockIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := attendanceMock.NewMockService(gomock.NewController(t))
		h := attendance.NewHandler(svc)

		c, w := newContext(http.MethodPost, "/attendance/clock-in", `{"latitude":-6.1751,"longitude":106.865}`)
		c.Set("user_id", "u-1")

		svc.EXPECT().ClockIn(gomock.Any(), "u-1", gomock.Any()).
			Return(attendance.ClockResponse{Message: "Clock in berhasil", Time: "07:45"}, nil)

		h.ClockIn(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Clock in berhasil")
	})

	t.Run("missing longitude", func(t *testing.T) {
		h := attendance.NewHandler(attendanceMock.NewMockService(gomock.NewController(t)))

		c, w := newContext(http.MethodPost, "/attendance/clock-in", `{"latitude":-6.1751}`)
		h.ClockIn(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejected by gate", func(t *testing.T) {
		svc := attendanceMock.NewMockService(gomock.NewController(t))
		h := attendance.NewHandler(svc)

		c, w := newContext(http.MethodPost, "/attendance/clock-in", `{"latitude":0,"longitude":0}`)
		svc.EXPECT().ClockIn(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(attendance.ClockResponse{}, attendanceerrors.ErrAlreadyClockedIn)

		h.ClockIn(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ATTENDANCE_REJECTED")
		assert.Contains(t, w.Body.String(), "Anda sudah clock in hari ini")
	})
}

func TestAttendanceHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := attendanceMock.NewMockService(gomock.NewController(t))
	h := attendance.NewHandler(svc)

	c, w := newContext(http.MethodGet, "/attendance/history?month=3&year=2026&type=clock_out&page_size=1", "")
	c.Set("user_id", "u-1")

	svc.EXPECT().History(gomock.Any(), "u-1", attendance.HistoryFilter{Kind: "clock_out", Month: 3, Year: 2026}).
		Return([]attendance.AttendanceResponse{{ID: "a"}, {ID: "b"}}, nil)

	h.History(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"a"`)
	assert.NotContains(t, w.Body.String(), `"id":"b"`)
}

func TestAttendanceHandler_Manual(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := attendanceMock.NewMockService(gomock.NewController(t))
	h := attendance.NewHandler(svc)

	body := `{"user_id":"6f1d3c3e-8f0c-4c53-9b0e-0c8f5d5b8a11","type":"clock_in","date":"2026-03-01","time":"09:30"}`
	c, w := newContext(http.MethodPost, "/mentor/attendance/manual", body)
	c.Set("user_id", "m-1")
	c.Set("role", "mentor")

	svc.EXPECT().ManualRecord(gomock.Any(), mentor.Actor{ID: "m-1", Role: "mentor"}, gomock.Any()).
		Return(attendance.AttendanceResponse{ID: "x"}, nil)

	h.Manual(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Absensi manual berhasil ditambahkan")
}

func TestAttendanceHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved is required", func(t *testing.T) {
		h := attendance.NewHandler(attendanceMock.NewMockService(gomock.NewController(t)))

		c, w := newContext(http.MethodPost, "/mentor/attendance/approve",
			`{"attendance_id":"6f1d3c3e-8f0c-4c53-9b0e-0c8f5d5b8a11"}`)
		h.Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := attendanceMock.NewMockService(gomock.NewController(t))
		h := attendance.NewHandler(svc)

		c, w := newContext(http.MethodPost, "/mentor/attendance/approve",
			`{"attendance_id":"6f1d3c3e-8f0c-4c53-9b0e-0c8f5d5b8a11","approved":false}`)
		svc.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(attendance.AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound)

		h.Approve(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
