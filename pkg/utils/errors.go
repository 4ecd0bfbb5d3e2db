package utils

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/domain"
)

// StatusFromError maps domain errors onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds), errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrTooLate):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// RespondWithServiceError writes err with its mapped status. Unexpected errors
// are logged and answered with a generic message.
func RespondWithServiceError(w http.ResponseWriter, err error) {
	code := StatusFromError(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		RespondWithError(w, code, "Internal server error")
		return
	}
	RespondWithError(w, code, err.Error())
}
