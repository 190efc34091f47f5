package response

import (
	"net/http"
	"strconv"

	domainerrors "expo/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Success writes body as JSON. Bodies carry their own success flag.
func Success(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// Error writes the error envelope
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	return ErrorWithData(c, statusCode, errorCode, message, details, nil)
}

// ErrorWithData writes the error envelope with extra data for the client,
// such as the list of valid values for a rejected field.
func ErrorWithData(c echo.Context, statusCode int, errorCode string, message string, details string, data any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	// Internal details stay in the logs.
	if statusCode >= http.StatusInternalServerError {
		details = ""
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Data:    data,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// ValidationError reports failed struct validation
func ValidationError(c echo.Context, err error) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), err.Error())
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// HandleAppError writes a client-side AppError as the envelope. Server-side
// and unknown errors go back to echo's error handler, which logs them.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// CSV sends data as a file download
func CSV(c echo.Context, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+strconv.Quote(filename))

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

// PNG sends an inline image
func PNG(c echo.Context, data []byte) error {
	return c.Blob(http.StatusOK, "image/png", data)
}
