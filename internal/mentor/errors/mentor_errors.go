package mentorerrors

import (
	"net/http"

	"go-magang/internal/shared/apperror"
)

var (
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Mahasiswa tidak ditemukan",
		http.StatusNotFound,
	)

	ErrStudentOutOfScope = apperror.New(
		apperror.CodeForbidden,
		"Anda tidak memiliki akses ke mahasiswa ini",
		http.StatusForbidden,
	)

	ErrMentorNotFound = apperror.New(
		apperror.CodeNotFound,
		"Mentor tidak ditemukan",
		http.StatusNotFound,
	)

	ErrNoActiveMentor = apperror.New(
		apperror.CodeNotFound,
		"Mahasiswa belum memiliki mentor",
		http.StatusNotFound,
	)

	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"ID tidak valid",
		http.StatusBadRequest,
	)
)
