package scheduleerrors

import (
	"net/http"

	"go-magang/internal/shared/apperror"
)

var (
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Jadwal tidak ditemukan",
		http.StatusNotFound,
	)

	ErrInvalidScheduleID = apperror.New(
		apperror.CodeInvalidInput,
		"ID jadwal tidak valid",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Format tanggal harus YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidTime = apperror.New(
		apperror.CodeInvalidInput,
		"Format jam harus HH:MM",
		http.StatusBadRequest,
	)

	ErrInvalidWindow = apperror.New(
		apperror.CodeInvalidInput,
		"Jam mulai tidak boleh melewati batas waktu",
		http.StatusBadRequest,
	)
)
