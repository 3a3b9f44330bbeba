package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		got := ToHTTP(ErrForbidden)
		assert.Equal(t, http.StatusForbidden, got.Status)
		assert.Equal(t, CodeForbidden, got.Code)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("load student: %w", ErrNotFound)
		got := ToHTTP(err)
		assert.Equal(t, http.StatusNotFound, got.Status)
	})

	t.Run("plain error", func(t *testing.T) {
		got := ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, CodeInternalError, got.Code)
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("dial tcp")
	err := Wrap(cause, CodeServiceUnavailable, "Database tidak tersedia", http.StatusServiceUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "dial tcp")
	assert.Nil(t, Wrap(nil, CodeInternalError, "x", 500))
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_user_date_kind"})

	assert.True(t, IsUniqueViolation(err))
	assert.True(t, IsUniqueViolation(err, "uq_attendance_user_date_kind"))
	assert.False(t, IsUniqueViolation(err, "uq_users_email"))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		StudentID string  `json:"student_id" validate:"required"`
		Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string { return f.Tag.Get("json") })

	err := MapValidationError(v.Struct(payload{Latitude: 10}))
	assert.Equal(t, "Student Id wajib diisi", err.(*AppError).Message)

	err = MapValidationError(v.Struct(payload{StudentID: "x", Latitude: 100}))
	assert.Equal(t, "Latitude tidak valid", err.(*AppError).Message)

	err = MapValidationError(errors.New("EOF"))
	assert.Equal(t, CodeInvalidInput, err.(*AppError).Code)
}

func TestJSONFieldName(t *testing.T) {
	type req struct {
		StudentID string `json:"student_id,omitempty"`
		Secret    string `json:"-"`
		Plain     string
	}
	typ := reflect.TypeOf(req{})

	assert.Equal(t, "student_id", jsonFieldName(typ.Field(0)))
	assert.Equal(t, "", jsonFieldName(typ.Field(1)))
	assert.Equal(t, "", jsonFieldName(typ.Field(2)))
}
