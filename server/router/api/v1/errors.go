package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	rerrors "github.com/hrygo/laddoo/internal/errors"
	"github.com/hrygo/laddoo/server/internal/observability"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    rerrors.ErrorCode `json:"code"`
	Message string            `json:"message"`
}

// httpStatus maps an error code to the HTTP status it is reported with.
func httpStatus(code rerrors.ErrorCode) int {
	switch code {
	case rerrors.ErrCodeNotRecognized, rerrors.ErrCodeInvalid, rerrors.ErrCodePastInstant:
		return http.StatusBadRequest
	case rerrors.ErrCodeDuplicateKey:
		return http.StatusConflict
	case rerrors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, err error) error {
	code := rerrors.GetCodeFromError(err, rerrors.ErrCodeStorage)
	status := httpStatus(code)

	message := err.Error()
	var e *rerrors.Error
	if errors.As(err, &e) {
		message = e.Message
	}

	if status >= http.StatusInternalServerError {
		observability.Logger(c.Request().Context()).Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = "internal error"
	}
	return c.JSON(status, ErrorResponse{Code: code, Message: message})
}

// bindError reports a malformed request body.
func bindError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    rerrors.ErrCodeNotRecognized,
		Message: "malformed request: " + err.Error(),
	})
}
