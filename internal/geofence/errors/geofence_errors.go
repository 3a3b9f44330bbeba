package geofenceerrors

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

	ErrInvalidTimeOfDay = apperror.New(
		apperror.CodeInvalidInput,
		"Format waktu tidak valid, gunakan HH:MM",
		http.StatusBadRequest,
	)

	ErrInvalidWindow = apperror.New(
		apperror.CodeInvalidInput,
		"Waktu mulai tidak boleh melewati waktu selesai",
		http.StatusBadRequest,
	)

	ErrInvalidEventKind = apperror.New(
		apperror.CodeInvalidInput,
		"Tipe absensi harus clock_in atau clock_out",
		http.StatusBadRequest,
	)
)
