package attendanceerrors

import (
	"fmt"
	"net/http"
	"strconv"

	"go-magang/internal/shared/apperror"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeRejected,
		"Anda sudah clock in hari ini",
		http.StatusBadRequest,
	)

	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeRejected,
		"Anda sudah clock out hari ini",
		http.StatusBadRequest,
	)

	ErrMissingClockIn = apperror.New(
		apperror.CodeRejected,
		"Anda belum clock in hari ini",
		http.StatusBadRequest,
	)

	ErrManualDuplicate = apperror.New(
		apperror.CodeConflict,
		"Mahasiswa sudah memiliki absensi untuk tanggal ini",
		http.StatusBadRequest,
	)

	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Absensi tidak ditemukan",
		http.StatusNotFound,
	)

	ErrInvalidAttendanceID = apperror.New(
		apperror.CodeInvalidInput,
		"ID absensi tidak valid",
		http.StatusBadRequest,
	)

	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"Tipe absensi harus clock_in atau clock_out",
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
)

// OutsideWindow: label is "Clock in" / "Clock out", window is "07:30 - 08:00".
func OutsideWindow(label, window string) *apperror.AppError {
	return apperror.New(
		apperror.CodeRejected,
		fmt.Sprintf("%s hanya dapat dilakukan antara pukul %s", label, window),
		http.StatusBadRequest,
	)
}

func TooFarFromOffice(distance int, maxDistance float64) *apperror.AppError {
	return apperror.New(
		apperror.CodeRejected,
		fmt.Sprintf("Jarak terlalu jauh dari kantor: %d meter. Maksimal %s meter.",
			distance, strconv.FormatFloat(maxDistance, 'f', -1, 64)),
		http.StatusBadRequest,
	)
}
