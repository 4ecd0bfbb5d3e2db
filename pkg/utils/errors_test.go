package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/bookingledger/internal/domain"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.Validationf("guests must be positive"), http.StatusBadRequest},
		{fmt.Errorf("%w: only the host can confirm", domain.ErrForbidden), http.StatusForbidden},
		{domain.ErrRewardsNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: cannot complete a pending booking", domain.ErrInvalidState), http.StatusConflict},
		{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
		{domain.ErrInsufficientPoints, http.StatusPaymentRequired},
		{domain.ErrTooLate, http.StatusUnprocessableEntity},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, StatusFromError(tt.err))
		})
	}
}

func TestRespondWithServiceError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithServiceError(w, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Internal server error", resp.Message)

	w = httptest.NewRecorder()
	RespondWithServiceError(w, domain.ErrTooLate)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "refund window has closed", resp.Message)
}
