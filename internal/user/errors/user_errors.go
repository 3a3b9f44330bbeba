package usererrors

import (
	"net/http"

	"go-magang/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User tidak ditemukan",
		http.StatusNotFound,
	)

	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email sudah terdaftar",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"ID user tidak valid",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role harus mahasiswa, mentor, atau pengurus",
		http.StatusBadRequest,
	)

	ErrInvalidBirthDate = apperror.New(
		apperror.CodeInvalidInput,
		"Tanggal lahir harus berformat YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrCannotDeleteSelf = apperror.New(
		apperror.CodeInvalidState,
		"Tidak dapat menghapus akun sendiri",
		http.StatusBadRequest,
	)
)
