package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Data tidak ditemukan",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"Akses ditolak",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Terjadi kesalahan pada server",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Token tidak ditemukan",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Input tidak valid",
		http.StatusBadRequest,
	)
)

func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s wajib diisi", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s tidak valid", field),
		http.StatusBadRequest,
	)
}
