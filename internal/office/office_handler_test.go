package office_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-magang/internal/office"
	officeerrors "go-magang/internal/office/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeOfficeService struct {
	getFn    func(ctx context.Context) (office.OfficeLocationResponse, error)
	updateFn func(ctx context.Context, actorID string, req office.UpdateOfficeRequest) (office.OfficeLocationResponse, error)
}

func (f *fakeOfficeService) Get(ctx context.Context) (office.OfficeLocationResponse, error) {
	return f.getFn(ctx)
}

func (f *fakeOfficeService) Update(ctx context.Context, actorID string, req office.UpdateOfficeRequest) (office.OfficeLocationResponse, error) {
	return f.updateFn(ctx, actorID, req)
}

func TestOfficeHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("binds and passes actor", func(t *testing.T) {
		var gotActor string
		svc := &fakeOfficeService{
			updateFn: func(_ context.Context, actorID string, req office.UpdateOfficeRequest) (office.OfficeLocationResponse, error) {
				gotActor = actorID
				return office.OfficeLocationResponse{Latitude: *req.Latitude, Longitude: *req.Longitude, Name: "Kantor Utama"}, nil
			},
		}
		h := office.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", "admin-1")
		c.Request = httptest.NewRequest(http.MethodPut, "/office/location",
			bytes.NewBufferString(`{"latitude":-6.18,"longitude":106.87}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin-1", gotActor)
		assert.Contains(t, w.Body.String(), `"latitude":-6.18`)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		h := office.NewHandler(&fakeOfficeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/office/location", bytes.NewBufferString(`{"name":"x"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service validation error", func(t *testing.T) {
		svc := &fakeOfficeService{
			updateFn: func(context.Context, string, office.UpdateOfficeRequest) (office.OfficeLocationResponse, error) {
				return office.OfficeLocationResponse{}, officeerrors.ErrInvalidLatitude
			},
		}
		h := office.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/office/location",
			bytes.NewBufferString(`{"latitude":100,"longitude":106.87}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Latitude harus antara -90 dan 90")
	})
}

func TestOfficeHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeOfficeService{
		getFn: func(context.Context) (office.OfficeLocationResponse, error) {
			return office.OfficeLocationResponse{Name: "Kantor Utama", IsDefault: true, MaxDistanceMeters: 500}, nil
		},
	}
	h := office.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/office/location", nil)

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_default":true`)
}
