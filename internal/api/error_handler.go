package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medcore/healthcare-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid username or password"
	case errors.Is(err, domain.ErrLoginThrottled):
		return http.StatusTooManyRequests, "too many login attempts"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "you do not have access to this patient's data"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "username or email already exists"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "invalid role"
	case errors.Is(err, domain.ErrInvalidAppointmentStatus):
		return http.StatusBadRequest, "invalid appointment status"
	case errors.Is(err, domain.ErrPatientNotFound):
		return http.StatusNotFound, "patient not found"
	case errors.Is(err, domain.ErrClinicianNotFound):
		return http.StatusNotFound, "clinician not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrAppointmentNotFound):
		return http.StatusNotFound, "appointment not found"
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, "medical record not found"
	case errors.Is(err, domain.ErrPrescriptionNotFound):
		return http.StatusNotFound, "prescription not found"
	case errors.Is(err, domain.ErrMediaNotFound):
		return http.StatusNotFound, "media file not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
