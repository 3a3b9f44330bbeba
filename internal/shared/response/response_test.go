package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(5), meta.Total)

	page, _ = Paginate(items, 9, 2)
	assert.Empty(t, page)

	page, meta = Paginate(items, 0, 0)
	assert.Len(t, page, 5)
	assert.Equal(t, 10, meta.PageSize)
}

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, http.StatusBadRequest, "INVALID_INPUT", "Input tidak valid", nil)

	var body struct {
		Ok    bool      `json:"ok"`
		Error ErrorBody `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Ok)
	assert.Equal(t, "INVALID_INPUT", body.Error.Code)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
