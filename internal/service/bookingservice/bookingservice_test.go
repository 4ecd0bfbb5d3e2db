package bookingservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/pg"
)

type mocks struct {
	repo       *MockRepo
	listings   *MockListingRepo
	ledger     *MockLedger
	fees       *MockFeePolicy
	outbox     *MockOutbox
	dispatcher *MockDispatcher
	tx         *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:       NewMockRepo(ctrl),
		listings:   NewMockListingRepo(ctrl),
		ledger:     NewMockLedger(ctrl),
		fees:       NewMockFeePolicy(ctrl),
		outbox:     NewMockOutbox(ctrl),
		dispatcher: NewMockDispatcher(ctrl),
		tx:         pg.NewMockTXManager(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.repo, m.listings, m.ledger, m.fees, m.outbox, m.dispatcher, m.tx)
	service.nowFn = func() time.Time { return today }
	return service, m
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		ListingID:   "listing-1",
		Type:        domain.BookingTypeExperiences,
		Schedule:    domain.SlotSchedule{Date: today.AddDate(0, 0, 1), Time: "09:00"},
		Guests:      1,
		TotalAmount: decimal.NewFromInt(200),
	}
}

func TestCreateBooking_Validation(t *testing.T) {
	service, _ := NewMock(t)

	tests := []struct {
		name   string
		modify func(in *CreateBookingInput)
	}{
		{"unknown type", func(in *CreateBookingInput) { in.Type = "boats" }},
		{"no listing", func(in *CreateBookingInput) { in.ListingID = "" }},
		{"no guests", func(in *CreateBookingInput) { in.Guests = 0 }},
		{"zero amount", func(in *CreateBookingInput) { in.TotalAmount = decimal.Zero }},
		{"sub-cent amount", func(in *CreateBookingInput) { in.TotalAmount = decimal.RequireFromString("200.004") }},
		{"negative points", func(in *CreateBookingInput) { in.PointsUsed = -1 }},
		{"no schedule", func(in *CreateBookingInput) { in.Schedule = nil }},
		{"slot without time", func(in *CreateBookingInput) {
			in.Schedule = domain.SlotSchedule{Date: today.AddDate(0, 0, 1)}
		}},
		{"slot in the past", func(in *CreateBookingInput) {
			in.Schedule = domain.SlotSchedule{Date: today.AddDate(0, 0, -1), Time: "09:00"}
		}},
		{"stay dates on an experience", func(in *CreateBookingInput) {
			in.Schedule = domain.StaySchedule{CheckIn: today.AddDate(0, 0, 1), CheckOut: today.AddDate(0, 0, 2)}
		}},
		{"slot on a stay", func(in *CreateBookingInput) { in.Type = domain.BookingTypeStays }},
		{"checkout before checkin", func(in *CreateBookingInput) {
			in.Type = domain.BookingTypeStays
			in.Schedule = domain.StaySchedule{CheckIn: today.AddDate(0, 0, 3), CheckOut: today.AddDate(0, 0, 3)}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.modify(&in)
			_, err := service.CreateBooking(context.Background(), guest, in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreateBooking(t *testing.T) {
	listing := &domain.Listing{ID: "listing-1", HostID: host.UserID, Category: domain.BookingTypeExperiences}

	tests := []struct {
		name        string
		actor       domain.Actor
		mockSetup   func(m *mocks)
		expectedErr error
	}{
		{
			name:  "Created",
			actor: guest,
			mockSetup: func(m *mocks) {
				m.listings.EXPECT().GetByID(gomock.Any(), "listing-1").Return(listing, nil)
				m.fees.EXPECT().CalculateServiceFee(gomock.Any(), gomock.Any(), domain.BookingTypeExperiences).
					Return(decimal.NewFromInt(20), decimal.NewFromInt(10), nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *domain.Booking) error {
					assert.Equal(t, domain.StatusPending, b.Status)
					assert.Equal(t, host.UserID, b.HostID)
					assert.True(t, b.ServiceFee.Equal(decimal.NewFromInt(20)))
					return nil
				})
				m.listings.EXPECT().ReserveDates(gomock.Any(), "listing-1", gomock.Any(), []time.Time{domain.Day(today.AddDate(0, 0, 1))}).Return(nil)
				m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
				m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Len(1))
			},
		},
		{
			name:  "Listing not found",
			actor: guest,
			mockSetup: func(m *mocks) {
				m.listings.EXPECT().GetByID(gomock.Any(), "listing-1").Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name:  "Own listing",
			actor: host,
			mockSetup: func(m *mocks) {
				m.listings.EXPECT().GetByID(gomock.Any(), "listing-1").Return(listing, nil)
			},
			expectedErr: domain.ErrForbidden,
		},
		{
			name:  "Category mismatch",
			actor: guest,
			mockSetup: func(m *mocks) {
				m.listings.EXPECT().GetByID(gomock.Any(), "listing-1").
					Return(&domain.Listing{ID: "listing-1", HostID: host.UserID, Category: domain.BookingTypeServices}, nil)
			},
			expectedErr: domain.ErrValidation,
		},
		{
			name:  "Dates taken",
			actor: guest,
			mockSetup: func(m *mocks) {
				m.listings.EXPECT().GetByID(gomock.Any(), "listing-1").Return(listing, nil)
				m.fees.EXPECT().CalculateServiceFee(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(decimal.NewFromInt(20), decimal.NewFromInt(10), nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.listings.EXPECT().ReserveDates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrInvalidState)
			},
			expectedErr: domain.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.mockSetup(m)

			b, err := service.CreateBooking(context.Background(), tt.actor, validInput())
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, guest.UserID, b.GuestID)
			assert.True(t, b.GrandTotal().Equal(decimal.NewFromInt(220)))
		})
	}
}

func TestGetBooking(t *testing.T) {
	booking := &domain.Booking{ID: "b-1", GuestID: guest.UserID, HostID: host.UserID}

	tests := []struct {
		name        string
		actor       domain.Actor
		found       *domain.Booking
		repoErr     error
		expectedErr error
	}{
		{name: "Guest", actor: guest, found: booking},
		{name: "Host", actor: host, found: booking},
		{name: "Admin", actor: domain.Actor{UserID: "admin", Role: domain.RoleAdmin}, found: booking},
		{name: "Stranger", actor: domain.Actor{UserID: "x", Role: domain.RoleGuest}, found: booking, expectedErr: domain.ErrForbidden},
		{name: "Missing", actor: guest, expectedErr: domain.ErrNotFound},
		{name: "Repo error", actor: guest, repoErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(tt.found, tt.repoErr)

			b, err := service.GetBooking(context.Background(), tt.actor, "b-1")
			switch {
			case tt.repoErr != nil:
				assert.Equal(t, tt.repoErr, err)
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, booking, b)
			}
		})
	}
}

func TestListBookings(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	m.repo.EXPECT().ListByHost(gomock.Any(), host.UserID, domain.StatusPending).Return([]domain.Booking{{ID: "b-1"}}, nil)
	list, err := service.ListBookings(ctx, host, domain.StatusPending)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	m.repo.EXPECT().ListByGuest(gomock.Any(), guest.UserID, domain.BookingStatus("")).Return(nil, nil)
	list, err = service.ListBookings(ctx, guest, "")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = service.ListBookings(ctx, guest, "lost")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTransition_RollsBackOnOutboxFailure(t *testing.T) {
	service, m := NewMock(t)
	booking := &domain.Booking{
		ID: "b-1", GuestID: guest.UserID, HostID: host.UserID, Status: domain.StatusPending,
		Schedule: domain.SlotSchedule{Date: today.AddDate(0, 0, 2), Time: "10:00"},
	}
	outboxErr := errors.New("outbox unavailable")

	m.repo.EXPECT().GetForUpdate(gomock.Any(), "b-1").Return(booking, nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusPending).Return(true, nil)
	m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(outboxErr)

	_, err := service.Confirm(context.Background(), host, "b-1")
	assert.ErrorIs(t, err, outboxErr)
}

func TestTransition_LostRace(t *testing.T) {
	service, m := NewMock(t)
	booking := &domain.Booking{ID: "b-1", GuestID: guest.UserID, HostID: host.UserID, Status: domain.StatusConfirmed}

	m.repo.EXPECT().GetForUpdate(gomock.Any(), "b-1").Return(booking, nil)
	m.ledger.EXPECT().CapturePayment(gomock.Any(), booking).Return(nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusConfirmed).Return(false, nil)

	_, err := service.Complete(context.Background(), host, "b-1")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}
