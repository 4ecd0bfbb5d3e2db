package listings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/dto"
	"github.com/GlebRadaev/bookingledger/pkg/auth"
)

var host = domain.Actor{UserID: "host-1", Role: domain.RoleHost}

func NewMock(t *testing.T) (*ListingHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestCreateListing(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"category":"stays","title":"Beach house"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateListing(gomock.Any(), host, domain.BookingTypeStays, "Beach house").
					Return(&domain.Listing{ID: "listing-1", HostID: "host-1", Category: domain.BookingTypeStays, Title: "Beach house"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing title",
			body:         `{"category":"stays"}`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Broken JSON",
			body:         `{`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Limit reached",
			body: `{"category":"stays","title":"Cabin"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateListing(gomock.Any(), host, domain.BookingTypeStays, "Cabin").
					Return(nil, fmt.Errorf("%w: listing limit of 3 reached for stays", domain.ErrForbidden))
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodPost, "/api/listings", strings.NewReader(tt.body))
			r = r.WithContext(auth.WithActor(r.Context(), host))
			w := httptest.NewRecorder()
			handler.CreateListing(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.ListingResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "listing-1", body.ID)
			}
		})
	}
}

func TestGetListing(t *testing.T) {
	withID := func(id string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/api/listings/"+id, http.NoBody)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		return r.WithContext(context.WithValue(auth.WithActor(r.Context(), host), chi.RouteCtxKey, rctx))
	}

	handler, service := NewMock(t)

	service.EXPECT().GetListing(gomock.Any(), "listing-1").Return(&domain.Listing{ID: "listing-1"}, nil)
	w := httptest.NewRecorder()
	handler.GetListing(w, withID("listing-1"))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().GetListing(gomock.Any(), "listing-2").Return(nil, domain.ErrNotFound)
	w = httptest.NewRecorder()
	handler.GetListing(w, withID("listing-2"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
