package officeerrors

import (
	"net/http"

	"go-magang/internal/shared/apperror"
)

var (
	ErrInvalidLatitude = apperror.New(
		apperror.CodeInvalidInput,
		"Latitude harus antara -90 dan 90",
		http.StatusBadRequest,
	)

	ErrInvalidLongitude = apperror.New(
		apperror.CodeInvalidInput,
		"Longitude harus antara -180 dan 180",
		http.StatusBadRequest,
	)

	ErrInvalidMaxDistance = apperror.New(
		apperror.CodeInvalidInput,
		"Jarak maksimal harus lebih dari 0",
		http.StatusBadRequest,
	)

	ErrOfficeUnavailable = apperror.New(
		apperror.CodeInternalError,
		"Gagal memuat lokasi kantor",
		http.StatusInternalServerError,
	)
)
