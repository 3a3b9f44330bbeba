package autherrors

import (
	"net/http"

	"go-magang/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Email atau password salah",
		http.StatusUnauthorized,
	)

	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email sudah terdaftar",
		http.StatusBadRequest,
	)

	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token tidak ditemukan",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeForbidden,
		"Token tidak valid",
		http.StatusForbidden,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token sudah kedaluwarsa",
		http.StatusUnauthorized,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"User tidak ditemukan",
		http.StatusUnauthorized,
	)

	ErrUserInactive = apperror.New(
		apperror.CodeForbidden,
		"Akun tidak aktif",
		http.StatusForbidden,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Akses ditolak",
		http.StatusForbidden,
	)

	ErrRoleNotAllowed = apperror.New(
		apperror.CodeInvalidInput,
		"Role registrasi harus mahasiswa atau mentor",
		http.StatusBadRequest,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Gagal membuat token",
		http.StatusInternalServerError,
	)
)
