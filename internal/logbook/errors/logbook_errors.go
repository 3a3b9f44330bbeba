package logbookerrors

import (
	"fmt"
	"net/http"

	"go-magang/internal/shared/apperror"
)

var (
	ErrLogbookNotFound = apperror.New(
		apperror.CodeNotFound,
		"Logbook tidak ditemukan",
		http.StatusNotFound,
	)

	ErrInvalidLogbookID = apperror.New(
		apperror.CodeInvalidInput,
		"ID logbook tidak valid",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Format tanggal harus YYYY-MM-DD",
		http.StatusBadRequest,
	)
)

// OutsideWindow: verb is "diisi", "diupdate" or "dihapus".
func OutsideWindow(verb, window string) *apperror.AppError {
	return apperror.New(
		apperror.CodeRejected,
		fmt.Sprintf("Logbook hanya dapat %s antara pukul %s", verb, window),
		http.StatusBadRequest,
	)
}

func DailyLimitReached(limit int) *apperror.AppError {
	return apperror.New(
		apperror.CodeRejected,
		fmt.Sprintf("Maksimal %d kegiatan per hari", limit),
		http.StatusBadRequest,
	)
}
