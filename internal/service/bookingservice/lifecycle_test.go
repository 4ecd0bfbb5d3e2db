package bookingservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/internal/pg"
	"github.com/GlebRadaev/bookingledger/internal/service/feeservice"
	"github.com/GlebRadaev/bookingledger/internal/service/walletservice"
	"github.com/GlebRadaev/bookingledger/pkg/cache"
)

var (
	guest = domain.Actor{UserID: "guest-1", Role: domain.RoleGuest}
	host  = domain.Actor{UserID: "host-1", Role: domain.RoleHost}
	today = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
)

type reservation struct {
	listingID string
	dates     []time.Time
}

// memStore keeps every table the booking flow touches. Transactions are
// serialized and roll back by restoring a snapshot.
type memStore struct {
	mu           sync.Mutex
	bookings     map[string]domain.Booking
	listings     map[string]domain.Listing
	reservations map[string]reservation
	wallets      map[string]domain.Wallet
	transactions []domain.Transaction
	revenue      []domain.PlatformRevenue
	outbox       []domain.OutboxEvent
}

func newMemStore() *memStore {
	return &memStore{
		bookings:     map[string]domain.Booking{},
		listings:     map[string]domain.Listing{},
		reservations: map[string]reservation{},
		wallets:      map[string]domain.Wallet{},
	}
}

func (s *memStore) snapshot() *memStore {
	return &memStore{
		bookings:     maps.Clone(s.bookings),
		listings:     maps.Clone(s.listings),
		reservations: maps.Clone(s.reservations),
		wallets:      maps.Clone(s.wallets),
		transactions: slices.Clone(s.transactions),
		revenue:      slices.Clone(s.revenue),
		outbox:       slices.Clone(s.outbox),
	}
}

func (s *memStore) restore(snap *memStore) {
	s.bookings = snap.bookings
	s.listings = snap.listings
	s.reservations = snap.reservations
	s.wallets = snap.wallets
	s.transactions = snap.transactions
	s.revenue = snap.revenue
	s.outbox = snap.outbox
}

type inTxKey struct{}

type memTx struct{ s *memStore }

func (m memTx) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(inTxKey{}) != nil {
		return fn(ctx)
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	snap := m.s.snapshot()
	if err := fn(context.WithValue(ctx, inTxKey{}, true)); err != nil {
		m.s.restore(snap)
		return err
	}
	return nil
}

type memBookings struct{ s *memStore }

func (r memBookings) Create(_ context.Context, b *domain.Booking) error {
	r.s.bookings[b.ID] = *b
	return nil
}

func (r memBookings) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r memBookings) GetForUpdate(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r memBookings) UpdateStatus(_ context.Context, b *domain.Booking, from domain.BookingStatus) (bool, error) {
	if r.s.bookings[b.ID].Status != from {
		return false, nil
	}
	r.s.bookings[b.ID] = *b
	return true, nil
}

func (r memBookings) ListByGuest(_ context.Context, guestID string, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.list(func(b domain.Booking) bool { return b.GuestID == guestID }, status), nil
}

func (r memBookings) ListByHost(_ context.Context, hostID string, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.list(func(b domain.Booking) bool { return b.HostID == hostID }, status), nil
}

func (r memBookings) list(match func(domain.Booking) bool, status domain.BookingStatus) []domain.Booking {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Booking
	for _, b := range r.s.bookings {
		if match(b) && (status == "" || b.Status == status) {
			out = append(out, b)
		}
	}
	return out
}

type memListings struct{ s *memStore }

func (r memListings) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	l, ok := r.s.listings[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r memListings) ReserveDates(_ context.Context, listingID, bookingID string, dates []time.Time) error {
	for _, res := range r.s.reservations {
		if res.listingID != listingID {
			continue
		}
		for _, d := range dates {
			if slices.ContainsFunc(res.dates, d.Equal) {
				return fmt.Errorf("%w: %s is taken", domain.ErrInvalidState, d.Format(time.DateOnly))
			}
		}
	}
	r.s.reservations[bookingID] = reservation{listingID: listingID, dates: dates}
	return nil
}

func (r memListings) ReleaseDates(_ context.Context, bookingID string) (int64, error) {
	n := int64(len(r.s.reservations[bookingID].dates))
	delete(r.s.reservations, bookingID)
	return n, nil
}

type memWallets struct{ s *memStore }

func (r memWallets) CreateWallet(_ context.Context, userID string) (*domain.Wallet, error) {
	w, ok := r.s.wallets[userID]
	if !ok {
		w = domain.Wallet{ID: "wallet-" + userID, UserID: userID}
		r.s.wallets[userID] = w
	}
	return &w, nil
}

func (r memWallets) GetWalletByUserID(_ context.Context, userID string) (*domain.Wallet, error) {
	w, ok := r.s.wallets[userID]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r memWallets) LockWallets(_ context.Context, walletIDs ...string) error {
	for _, id := range walletIDs {
		if _, ok := r.byID(id); !ok {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r memWallets) ApplyMutation(_ context.Context, m domain.LedgerMutation) (*domain.Transaction, error) {
	w, ok := r.byID(m.WalletID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := w.Accumulate(m); err != nil {
		return nil, err
	}
	r.s.wallets[w.UserID] = w
	entry := domain.Transaction{
		ID:          fmt.Sprintf("tx-%d", len(r.s.transactions)+1),
		WalletID:    w.ID,
		UserID:      w.UserID,
		Amount:      m.Delta,
		Type:        m.Type,
		Status:      domain.TransactionStatusCompleted,
		BookingID:   m.BookingID,
		ListingType: m.ListingType,
		Description: m.Description,
	}
	r.s.transactions = append(r.s.transactions, entry)
	return &entry, nil
}

func (r memWallets) ListTransactions(_ context.Context, walletID string, _ int) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, tx := range r.s.transactions {
		if tx.WalletID == walletID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r memWallets) SumTransactions(ctx context.Context, walletID string) (decimal.Decimal, error) {
	list, _ := r.ListTransactions(ctx, walletID, 0)
	sum := decimal.Zero
	for _, tx := range list {
		sum = sum.Add(tx.Amount)
	}
	return sum, nil
}

func (r memWallets) byID(id string) (domain.Wallet, bool) {
	for _, w := range r.s.wallets {
		if w.ID == id {
			return w, true
		}
	}
	return domain.Wallet{}, false
}

type memRevenue struct{ s *memStore }

func (r memRevenue) CreateRevenue(_ context.Context, rev *domain.PlatformRevenue) error {
	r.s.revenue = append(r.s.revenue, *rev)
	return nil
}

func (r memRevenue) SumByType(_ context.Context, _, _ time.Time) (map[domain.TransactionType]decimal.Decimal, error) {
	out := map[domain.TransactionType]decimal.Decimal{}
	for _, rev := range r.s.revenue {
		out[rev.Type] = out[rev.Type].Add(rev.Amount)
	}
	return out, nil
}

type memOutbox struct{ s *memStore }

func (r memOutbox) Enqueue(_ context.Context, events ...domain.OutboxEvent) error {
	r.s.outbox = append(r.s.outbox, events...)
	return nil
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []domain.OutboxEvent
}

func (d *recordingDispatcher) Dispatch(_ context.Context, events []domain.OutboxEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, events...)
}

type harness struct {
	svc        *Service
	store      *memStore
	wallets    memWallets
	dispatcher *recordingDispatcher
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := newMemStore()
	tx := memTx{s: store}

	feeRepo := feeservice.NewMockRepo(ctrl)
	feeRepo.EXPECT().GetConfig(gomock.Any()).Return(nil, nil).AnyTimes()
	fees := feeservice.New(feeRepo, tx, cache.NewInMemoryCache(), time.Minute)

	wallets := memWallets{s: store}
	ledger := walletservice.New(wallets, memRevenue{s: store}, tx)

	dispatcher := &recordingDispatcher{}
	svc := New(memBookings{s: store}, memListings{s: store}, ledger, fees, memOutbox{s: store}, dispatcher, tx)
	svc.nowFn = func() time.Time { return today }

	store.listings["listing-1"] = domain.Listing{
		ID: "listing-1", HostID: host.UserID, Category: domain.BookingTypeStays, Title: "Beach house",
	}
	return &harness{svc: svc, store: store, wallets: wallets, dispatcher: dispatcher}
}

// fund gives userID a wallet whose balance is backed by a deposit entry.
func (h *harness) fund(t *testing.T, userID, amount string) {
	t.Helper()
	ctx := context.Background()
	w, err := h.wallets.CreateWallet(ctx, userID)
	require.NoError(t, err)
	_, err = h.wallets.ApplyMutation(ctx, domain.LedgerMutation{
		WalletID: w.ID, Delta: decimal.RequireFromString(amount), Type: domain.TransactionDeposit,
	})
	require.NoError(t, err)
}

func (h *harness) book(t *testing.T, checkIn time.Time, nights int, pointsUsed int) *domain.Booking {
	t.Helper()
	b, err := h.svc.CreateBooking(context.Background(), guest, CreateBookingInput{
		ListingID:   "listing-1",
		Type:        domain.BookingTypeStays,
		Schedule:    domain.StaySchedule{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, nights)},
		Guests:      2,
		TotalAmount: decimal.NewFromInt(1000),
		PointsUsed:  pointsUsed,
	})
	require.NoError(t, err)
	return b
}

func (h *harness) balance(userID string) decimal.Decimal {
	return h.store.wallets[userID].Balance
}

func (h *harness) eventsFor(bookingID string, kind domain.EventKind) []domain.OutboxEvent {
	var out []domain.OutboxEvent
	for _, e := range h.store.outbox {
		if e.Kind != kind {
			continue
		}
		var p struct {
			BookingID string `json:"booking_id"`
		}
		if json.Unmarshal(e.Payload, &p) == nil && p.BookingID == bookingID {
			out = append(out, e)
		}
	}
	return out
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

// assertConserved checks that every wallet balance equals the sum of its entries.
func assertConserved(t *testing.T, h *harness) {
	t.Helper()
	for _, w := range h.store.wallets {
		sum, err := h.wallets.SumTransactions(context.Background(), w.ID)
		require.NoError(t, err)
		assert.Truef(t, sum.Equal(w.Balance), "wallet %s: balance %s, ledger %s", w.ID, w.Balance, sum)
		assert.False(t, w.Balance.IsNegative())
	}
}

func TestLifecycle_CompleteHappyPath(t *testing.T) {
	h := newHarness(t)
	h.fund(t, guest.UserID, "2000")
	ctx := context.Background()

	b := h.book(t, today.AddDate(0, 0, 10), 3, 0)
	assert.Equal(t, domain.StatusPending, b.Status)
	assertAmount(t, "50", b.ServiceFee)
	assertAmount(t, "5", b.FeePercentage)
	assertAmount(t, "1050", b.GrandTotal())
	assert.Len(t, h.store.reservations[b.ID].dates, 3)

	_, err := h.svc.Confirm(ctx, host, b.ID)
	require.NoError(t, err)

	done, err := h.svc.Complete(ctx, host, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)
	assertAmount(t, "1000", done.TotalAmount)
	assertAmount(t, "50", done.ServiceFee)

	assertAmount(t, "950", h.balance(guest.UserID))
	assertAmount(t, "1000", h.balance(host.UserID))
	assertAmount(t, "1050", h.store.wallets[guest.UserID].TotalSpent)
	assertAmount(t, "1000", h.store.wallets[host.UserID].TotalCashIn)

	require.Len(t, h.store.revenue, 1)
	assert.Equal(t, domain.TransactionServiceFee, h.store.revenue[0].Type)
	assertAmount(t, "50", h.store.revenue[0].Amount)
	assert.Equal(t, b.ID, h.store.revenue[0].BookingID)

	var payments []domain.Transaction
	for _, tx := range h.store.transactions {
		if tx.BookingID == b.ID {
			payments = append(payments, tx)
		}
	}
	require.Len(t, payments, 2)
	for _, tx := range payments {
		assert.Equal(t, domain.TransactionPayment, tx.Type)
		assert.Equal(t, "stays", tx.ListingType)
	}
	assertConserved(t, h)

	awards := h.eventsFor(b.ID, domain.EventPointsAward)
	require.Len(t, awards, 2)
	recipients := map[string]int{}
	for _, e := range awards {
		var p domain.PointsPayload
		require.NoError(t, json.Unmarshal(e.Payload, &p))
		recipients[p.UserID] = p.Points
	}
	assert.Equal(t, map[string]int{guest.UserID: 10, host.UserID: 10}, recipients)
	assert.Empty(t, h.eventsFor(b.ID, domain.EventPointsDeduct))
	assert.Len(t, h.eventsFor(b.ID, domain.EventNotify), 4)
	assert.Len(t, h.dispatcher.events, len(h.store.outbox))
}

func TestLifecycle_CompleteTwice(t *testing.T) {
	h := newHarness(t)
	h.fund(t, guest.UserID, "5000")
	ctx := context.Background()

	b := h.book(t, today.AddDate(0, 0, 3), 1, 0)
	_, err := h.svc.Confirm(ctx, host, b.ID)
	require.NoError(t, err)
	_, err = h.svc.Complete(ctx, host, b.ID)
	require.NoError(t, err)
	entries := len(h.store.transactions)
	events := len(h.store.outbox)

	_, err = h.svc.Complete(ctx, host, b.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assertAmount(t, "3950", h.balance(guest.UserID))
	assert.Len(t, h.store.transactions, entries)
	assert.Len(t, h.store.revenue, 1)
	assert.Len(t, h.store.outbox, events)
}

func TestLifecycle_ConcurrentComplete(t *testing.T) {
	h := newHarness(t)
	h.fund(t, guest.UserID, "5000")
	ctx := context.Background()

	b := h.book(t, today.AddDate(0, 0, 3), 1, 0)
	_, err := h.svc.Confirm(ctx, host, b.ID)
	require.NoError(t, err)

	const callers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.svc.Complete(ctx, host, b.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrInvalidState):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, conflicts)
	assertAmount(t, "3950", h.balance(guest.UserID))
	assert.Len(t, h.store.revenue, 1)
	assertConserved(t, h)
}

func TestLifecycle_InsufficientFunds(t *testing.T) {
	h := newHarness(t)
	h.fund(t, guest.UserID, "10")
	ctx := context.Background()

	b := h.book(t, today.AddDate(0, 0, 3), 1, 0)
	_, err := h.svc.Confirm(ctx, host, b.ID)
	require.NoError(t, err)
	outboxBefore := len(h.store.outbox)

	_, err = h.svc.Complete(ctx, host, b.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	assertAmount(t, "10", h.balance(guest.UserID))
	assert.Equal(t, domain.StatusConfirmed, h.store.bookings[b.ID].Status)
	assert.Nil(t, h.store.bookings[b.ID].CompletedAt)
	assert.Len(t, h.store.transactions, 1)
	assert.Empty(t, h.store.revenue)
	assert.NotContains(t, h.store.wallets, host.UserID)
	assert.Len(t, h.store.outbox, outboxBefore)
	assertConserved(t, h)
}

func TestLifecycle_MissingGuestWallet(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	b := h.book(t, today.AddDate(0, 0, 3), 1, 0)
	_, err := h.svc.Confirm(ctx, host, b.ID)
	require.NoError(t, err)

	_, err = h.svc.Complete(ctx, host, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.StatusConfirmed, h.store.bookings[b.ID].Status)
}

func TestLifecycle_RefundBeforeCompletion(t *testing.T) {
	h := newHarness(t)
	h.fund(t, guest.UserID, "2000")
	ctx := context.Background()

	b := h.book(t, today.AddDate(0, 0, 5), 2, 0)
	_, err := h.svc.Confirm(ctx, host, b.ID)
	require.NoError(t, err)

	requested, err := h.svc.RequestRefund(ctx, guest, b.ID, "plans changed")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRefundRequested, requested.Status)
	assert.Equal(t, "plans changed", requested.RefundRequestReason)
	assert.Equal(t, guest.UserID, requested.RefundRequestedBy)

	cancelled, err := h.svc.ApproveRefund(ctx, host, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.RefundApprovedAt)

	assert.Len(t, h.store.transactions, 1)
	assertAmount(t, "2000", h.balance(guest.UserID))
	assert.NotContains(t, h.store.reservations, b.ID)

	notes := h.eventsFor(b.ID, domain.EventNotify)
	var kinds []domain.NotificationKind
	for _, e := range notes {
		var p domain.NotifyPayload
		require.NoError(t, json.Unmarshal(e.Payload, &p))
		kinds = append(kinds, p.Kind)
	}
	assert.Equal(t, []domain.NotificationKind{
		domain.NotifyBookingRequested, domain.NotifyBookingConfirmed,
		domain.NotifyRefundRequested, domain.NotifyRefundApproved,
	}, kinds)

	// the freed nights can be booked again
	again := h.book(t, today.AddDate(0, 0, 5), 2, 0)
	assert.NotEqual(t, b.ID, again.ID)
}

func TestLifecycle_RefundDenied(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	b := h.book(t, today.AddDate(0, 0, 5), 2, 0)
	_, err := h.svc.Confirm(ctx, host, b.ID)
	require.NoError(t, err)
	_, err = h.svc.RequestRefund(ctx, guest, b.ID, "")
	require.NoError(t, err)

	_, err = h.svc.DenyRefund(ctx, host, b.ID, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	denied, err := h.svc.DenyRefund(ctx, host, b.ID, "non-refundable rate")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, denied.Status)
	assert.Equal(t, "non-refundable rate", denied.RefundDenialReason)
	require.NotNil(t, denied.RefundDeniedAt)
	assert.Contains(t, h.store.reservations, b.ID)
}

func TestLifecycle_RefundTooLate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	b := h.book(t, today.AddDate(0, 0, 2), 1, 0)
	_, err := h.svc.Confirm(ctx, host, b.ID)
	require.NoError(t, err)

	for _, now := range []time.Time{today.AddDate(0, 0, 2), today.AddDate(0, 0, 3)} {
		h.svc.nowFn = func() time.Time { return now }
		_, err = h.svc.RequestRefund(ctx, guest, b.ID, "sick")
		assert.ErrorIs(t, err, domain.ErrTooLate)
		assert.Equal(t, domain.StatusConfirmed, h.store.bookings[b.ID].Status)
	}

	h.svc.nowFn = func() time.Time { return today.AddDate(0, 0, 1).Add(11 * time.Hour) }
	_, err = h.svc.RequestRefund(ctx, guest, b.ID, "sick")
	assert.NoError(t, err)
}

func TestLifecycle_RejectFreesDates(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	b := h.book(t, today.AddDate(0, 0, 4), 2, 0)

	_, err := h.svc.Reject(ctx, host, b.ID, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	rejected, err := h.svc.Reject(ctx, host, b.ID, "maintenance")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, rejected.Status)
	assert.Equal(t, "maintenance", rejected.RejectionReason)
	assert.NotContains(t, h.store.reservations, b.ID)
}

func TestLifecycle_PointsDeductionEvent(t *testing.T) {
	h := newHarness(t)
	h.fund(t, guest.UserID, "2000")
	ctx := context.Background()

	b := h.book(t, today.AddDate(0, 0, 3), 1, 30)
	_, err := h.svc.Confirm(ctx, host, b.ID)
	require.NoError(t, err)
	_, err = h.svc.Complete(ctx, host, b.ID)
	require.NoError(t, err)

	deducts := h.eventsFor(b.ID, domain.EventPointsDeduct)
	require.Len(t, deducts, 1)
	var p domain.PointsPayload
	require.NoError(t, json.Unmarshal(deducts[0].Payload, &p))
	assert.Equal(t, guest.UserID, p.UserID)
	assert.Equal(t, 30, p.Points)
}

func TestLifecycle_OverlappingBooking(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	first := h.book(t, today.AddDate(0, 0, 4), 3, 0)

	_, err := h.svc.CreateBooking(ctx, domain.Actor{UserID: "guest-2", Role: domain.RoleGuest}, CreateBookingInput{
		ListingID:   "listing-1",
		Type:        domain.BookingTypeStays,
		Schedule:    domain.StaySchedule{CheckIn: today.AddDate(0, 0, 6), CheckOut: today.AddDate(0, 0, 8)},
		Guests:      1,
		TotalAmount: decimal.NewFromInt(400),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Len(t, h.store.bookings, 1)
	assert.Contains(t, h.store.bookings, first.ID)
	assert.Len(t, h.store.outbox, 1)

	// checkout day is free for the next check-in
	_, err = h.svc.CreateBooking(ctx, domain.Actor{UserID: "guest-2", Role: domain.RoleGuest}, CreateBookingInput{
		ListingID:   "listing-1",
		Type:        domain.BookingTypeStays,
		Schedule:    domain.StaySchedule{CheckIn: today.AddDate(0, 0, 7), CheckOut: today.AddDate(0, 0, 9)},
		Guests:      1,
		TotalAmount: decimal.NewFromInt(400),
	})
	assert.NoError(t, err)
}

func TestLifecycle_TransitionGrid(t *testing.T) {
	valid := map[domain.Transition]domain.BookingStatus{
		domain.TransitionConfirm:       domain.StatusPending,
		domain.TransitionReject:        domain.StatusPending,
		domain.TransitionComplete:      domain.StatusConfirmed,
		domain.TransitionRequestRefund: domain.StatusConfirmed,
		domain.TransitionApproveRefund: domain.StatusRefundRequested,
		domain.TransitionDenyRefund:    domain.StatusRefundRequested,
	}

	for _, tr := range domain.Transitions {
		for _, st := range domain.BookingStatuses {
			if valid[tr] == st {
				continue
			}
			t.Run(fmt.Sprintf("%s from %s", tr, st), func(t *testing.T) {
				h := newHarness(t)
				h.fund(t, guest.UserID, "5000")
				b := h.book(t, today.AddDate(0, 0, 7), 1, 0)
				seeded := h.store.bookings[b.ID]
				seeded.Status = st
				h.store.bookings[b.ID] = seeded
				entries := len(h.store.transactions)

				_, err := run(h.svc, tr, b.ID)
				assert.ErrorIs(t, err, domain.ErrInvalidState)
				assert.Equal(t, seeded, h.store.bookings[b.ID])
				assert.Len(t, h.store.transactions, entries)
				assertAmount(t, "5000", h.balance(guest.UserID))
			})
		}
	}
}

func TestLifecycle_WrongParty(t *testing.T) {
	stranger := domain.Actor{UserID: "someone", Role: domain.RoleHost}
	admin := domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}

	tests := []struct {
		name  string
		from  domain.BookingStatus
		actor domain.Actor
		tr    domain.Transition
	}{
		{"guest confirms", domain.StatusPending, guest, domain.TransitionConfirm},
		{"stranger rejects", domain.StatusPending, stranger, domain.TransitionReject},
		{"admin completes", domain.StatusConfirmed, admin, domain.TransitionComplete},
		{"host requests refund", domain.StatusConfirmed, host, domain.TransitionRequestRefund},
		{"guest approves refund", domain.StatusRefundRequested, guest, domain.TransitionApproveRefund},
		{"guest denies refund", domain.StatusRefundRequested, guest, domain.TransitionDenyRefund},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			b := h.book(t, today.AddDate(0, 0, 7), 1, 0)
			seeded := h.store.bookings[b.ID]
			seeded.Status = tt.from
			h.store.bookings[b.ID] = seeded

			_, err := runAs(h.svc, tt.actor, tt.tr, b.ID)
			assert.ErrorIs(t, err, domain.ErrForbidden)
			assert.Equal(t, seeded, h.store.bookings[b.ID])
		})
	}
}

func TestLifecycle_UnknownBooking(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.Confirm(context.Background(), host, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func run(s *Service, tr domain.Transition, id string) (*domain.Booking, error) {
	actor := host
	if tr.Actor() == domain.PartyGuest {
		actor = guest
	}
	return runAs(s, actor, tr, id)
}

func runAs(s *Service, actor domain.Actor, tr domain.Transition, id string) (*domain.Booking, error) {
	ctx := context.Background()
	switch tr {
	case domain.TransitionConfirm:
		return s.Confirm(ctx, actor, id)
	case domain.TransitionReject:
		return s.Reject(ctx, actor, id, "reason")
	case domain.TransitionComplete:
		return s.Complete(ctx, actor, id)
	case domain.TransitionRequestRefund:
		return s.RequestRefund(ctx, actor, id, "reason")
	case domain.TransitionApproveRefund:
		return s.ApproveRefund(ctx, actor, id)
	case domain.TransitionDenyRefund:
		return s.DenyRefund(ctx, actor, id, "reason")
	}
	return nil, fmt.Errorf("unknown transition %s", tr)
}
