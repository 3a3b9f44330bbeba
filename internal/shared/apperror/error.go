package apperror

import "fmt"

// AppError is an error the handlers can show to the user as is. Code is the
// stable machine code (ATTENDANCE_REJECTED, LOGBOOK_LIMIT, ...), Message is the
// Indonesian text the frontend displays.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	// Err is the underlying cause, kept for logs and errors.Is. Never sent to the client.
	Err error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// New is used for the package-level errors in each module's errors package,
// e.g. attendanceerrors.ErrAlreadyClockedIn.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap attaches a cause; a nil err stays nil so callers can wrap unconditionally.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}
