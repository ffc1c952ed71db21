package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
)

// memStore is an in-memory store with the same conditional-write semantics
// as the real repositories. WithinTx serialises on one lock and rolls back by
// restoring a snapshot.
type memStore struct {
	mu          sync.Mutex
	hotels      map[string]domain.Hotel
	bookings    map[string]domain.Booking
	users       map[string]domain.User
	entries     []domain.WalletEntry
	coupons     map[string]domain.Coupon
	redemptions map[string]domain.Redemption
}

type memTxKey struct{}

func newMemStore() *memStore {
	return &memStore{
		hotels:      map[string]domain.Hotel{},
		bookings:    map[string]domain.Booking{},
		users:       map[string]domain.User{},
		coupons:     map[string]domain.Coupon{},
		redemptions: map[string]domain.Redemption{},
	}
}

func (m *memStore) lock(ctx context.Context) func() {
	if ctx.Value(memTxKey{}) != nil {
		return func() {}
	}
	m.mu.Lock()
	return m.mu.Unlock
}

type memSnapshot struct {
	hotels      map[string]domain.Hotel
	bookings    map[string]domain.Booking
	users       map[string]domain.User
	entries     []domain.WalletEntry
	coupons     map[string]domain.Coupon
	redemptions map[string]domain.Redemption
}

func (m *memStore) snapshot() memSnapshot {
	coupons := make(map[string]domain.Coupon, len(m.coupons))
	for k, c := range m.coupons {
		c.UsedBy = slices.Clone(c.UsedBy)
		coupons[k] = c
	}
	return memSnapshot{
		hotels:      cloneMap(m.hotels),
		bookings:    cloneMap(m.bookings),
		users:       cloneMap(m.users),
		entries:     slices.Clone(m.entries),
		coupons:     coupons,
		redemptions: cloneMap(m.redemptions),
	}
}

func (m *memStore) restore(s memSnapshot) {
	m.hotels, m.bookings, m.users = s.hotels, s.bookings, s.users
	m.entries, m.coupons, m.redemptions = s.entries, s.coupons, s.redemptions
}

func cloneMap[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (m *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.snapshot()
	if err := fn(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

// hotels

type memHotels struct{ *memStore }

func (r memHotels) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	defer r.lock(ctx)()
	h, ok := r.hotels[id]
	if !ok {
		return nil, domain.ErrHotelNotFound
	}
	return &h, nil
}

func (r memHotels) HasOverlap(ctx context.Context, hotelID string, stay domain.StayRange) (bool, error) {
	defer r.lock(ctx)()
	if _, ok := r.hotels[hotelID]; !ok {
		return false, domain.ErrHotelNotFound
	}
	return r.overlaps(hotelID, stay), nil
}

func (m *memStore) overlaps(hotelID string, stay domain.StayRange) bool {
	for _, b := range m.bookings {
		if b.HotelID == hotelID && b.Status.HoldsInventory() && b.Stay().Overlaps(stay) {
			return true
		}
	}
	return false
}

// bookings

type memBookings struct{ *memStore }

func (r memBookings) Create(ctx context.Context, b *domain.Booking) error {
	defer r.lock(ctx)()
	if _, ok := r.hotels[b.HotelID]; !ok {
		return domain.ErrHotelNotFound
	}
	if r.overlaps(b.HotelID, b.Stay()) {
		return domain.ErrSlotUnavailable
	}
	if b.PaymentIntentID != nil {
		for _, other := range r.bookings {
			if other.PaymentIntentID != nil && *other.PaymentIntentID == *b.PaymentIntentID {
				return domain.ErrPaymentMismatch
			}
		}
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r memBookings) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	defer r.lock(ctx)()
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r memBookings) GetByPaymentIntent(ctx context.Context, intentID string) (*domain.Booking, error) {
	defer r.lock(ctx)()
	for _, b := range r.bookings {
		if b.PaymentIntentID != nil && *b.PaymentIntentID == intentID {
			return &b, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r memBookings) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus, reason *string) error {
	defer r.lock(ctx)()
	b, ok := r.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.Status != from {
		return domain.ErrInvalidTransition
	}
	b.Status = to
	if reason != nil {
		b.CancellationReason = reason
	}
	r.bookings[id] = b
	return nil
}

func (r memBookings) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	defer r.lock(ctx)()
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, &b)
		}
	}
	return out, nil
}

func (r memBookings) ListDueReminders(ctx context.Context, from, to time.Time, maxAttempts int) ([]*domain.Booking, error) {
	defer r.lock(ctx)()
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.Status == domain.BookingStatusCompleted && !b.ReminderSent && b.ReminderAttempts < maxAttempts &&
			!b.CheckIn.Before(from) && b.CheckIn.Before(to) {
			out = append(out, &b)
		}
	}
	return out, nil
}

func (r memBookings) MarkReminderSent(ctx context.Context, id string) error {
	defer r.lock(ctx)()
	b := r.bookings[id]
	b.ReminderSent = true
	r.bookings[id] = b
	return nil
}

func (r memBookings) IncReminderAttempts(ctx context.Context, id string) error {
	defer r.lock(ctx)()
	b := r.bookings[id]
	b.ReminderAttempts++
	r.bookings[id] = b
	return nil
}

// users and wallets

type memUsers struct{ *memStore }

func (r memUsers) Create(ctx context.Context, u *domain.User) error {
	defer r.lock(ctx)()
	for _, other := range r.users {
		if other.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r memUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	defer r.lock(ctx)()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r memUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	defer r.lock(ctx)()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r memUsers) GetByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	defer r.lock(ctx)()
	for _, u := range r.users {
		if u.ReferralCode == code {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type memWallets struct{ *memStore }

func (r memWallets) Credit(ctx context.Context, e *domain.WalletEntry) (int64, error) {
	defer r.lock(ctx)()
	return r.append(e)
}

func (r memWallets) Debit(ctx context.Context, e *domain.WalletEntry) (int64, error) {
	defer r.lock(ctx)()
	u, ok := r.users[e.UserID]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	if u.Wallet+e.Amount < 0 {
		return 0, domain.ErrInsufficientFunds
	}
	return r.append(e)
}

func (m *memStore) append(e *domain.WalletEntry) (int64, error) {
	u, ok := m.users[e.UserID]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	if e.IdempotencyKey != "" {
		for _, other := range m.entries {
			if other.IdempotencyKey == e.IdempotencyKey {
				return 0, domain.ErrDuplicateEntry
			}
		}
	}
	u.Wallet += e.Amount
	m.users[u.ID] = u
	m.entries = append(m.entries, *e)
	return u.Wallet, nil
}

func (r memWallets) History(ctx context.Context, userID string) ([]domain.WalletEntry, error) {
	defer r.lock(ctx)()
	var out []domain.WalletEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// coupons

type memCoupons struct{ *memStore }

func (r memCoupons) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	defer r.lock(ctx)()
	c, ok := r.coupons[code]
	if !ok {
		return nil, domain.ErrCouponNotFound
	}
	c.UsedBy = slices.Clone(c.UsedBy)
	return &c, nil
}

func (r memCoupons) ConsumeUse(ctx context.Context, code, userID string, now time.Time) error {
	defer r.lock(ctx)()
	c, ok := r.coupons[code]
	if !ok {
		return domain.ErrCouponNotFound
	}
	if c.UsedByUser(userID) {
		return domain.ErrCouponAlreadyApplied
	}
	if !c.Usable(now) {
		return domain.ErrCouponInvalid
	}
	c.Limit--
	c.UsedBy = append(slices.Clone(c.UsedBy), userID)
	r.coupons[code] = c
	return nil
}

func (r memCoupons) ReleaseUse(ctx context.Context, code, userID string) error {
	defer r.lock(ctx)()
	c, ok := r.coupons[code]
	if !ok || !c.UsedByUser(userID) {
		return nil
	}
	c.Limit++
	c.UsedBy = slices.DeleteFunc(slices.Clone(c.UsedBy), func(id string) bool { return id == userID })
	r.coupons[code] = c
	return nil
}

func (r memCoupons) InsertRedemption(ctx context.Context, red *domain.Redemption) error {
	defer r.lock(ctx)()
	if _, ok := r.redemptions[red.PaymentIntentID]; ok {
		return domain.ErrRedemptionExists
	}
	r.redemptions[red.PaymentIntentID] = *red
	return nil
}

func (r memCoupons) GetRedemption(ctx context.Context, intentID string) (*domain.Redemption, error) {
	defer r.lock(ctx)()
	red, ok := r.redemptions[intentID]
	if !ok {
		return nil, domain.ErrRedemptionNotFound
	}
	return &red, nil
}

func (r memCoupons) MarkRedemptionApplied(ctx context.Context, intentID string) error {
	defer r.lock(ctx)()
	red, ok := r.redemptions[intentID]
	if !ok {
		return domain.ErrRedemptionNotFound
	}
	red.Status = domain.RedemptionApplied
	r.redemptions[intentID] = red
	return nil
}

func (r memCoupons) DeleteRedemption(ctx context.Context, intentID string) error {
	defer r.lock(ctx)()
	delete(r.redemptions, intentID)
	return nil
}

// fakeGateway keeps intents in memory. failAmend makes every amend fail.
// lateAmend applies the next amend and then reports it as failed.
type fakeGateway struct {
	mu        sync.Mutex
	intents   map[string]domain.PaymentIntent
	seq       int
	failAmend error
	lateAmend error
	amends    int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{intents: map[string]domain.PaymentIntent{}}
}

func (g *fakeGateway) add(p domain.PaymentIntent) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.intents[p.ID] = p
}

func (g *fakeGateway) CreateIntent(_ context.Context, amount int64, currency string, md domain.IntentMetadata) (*domain.PaymentIntent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	p := domain.PaymentIntent{
		ID:           fmt.Sprintf("pi_%d", g.seq),
		Amount:       amount,
		Currency:     currency,
		Status:       domain.IntentRequiresPaymentMethod,
		Metadata:     md,
		ClientSecret: fmt.Sprintf("pi_%d_secret", g.seq),
	}
	g.intents[p.ID] = p
	return &p, nil
}

func (g *fakeGateway) RetrieveIntent(_ context.Context, id string) (*domain.PaymentIntent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.intents[id]
	if !ok {
		return nil, domain.ErrPaymentIntentNotFound
	}
	return &p, nil
}

func (g *fakeGateway) AmendIntent(_ context.Context, id string, amount int64) (*domain.PaymentIntent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failAmend != nil {
		return nil, g.failAmend
	}
	p, ok := g.intents[id]
	if !ok {
		return nil, domain.ErrPaymentIntentNotFound
	}
	g.amends++
	p.Amount = amount
	g.intents[id] = p
	if err := g.lateAmend; err != nil {
		g.lateAmend = nil
		return nil, err
	}
	return &p, nil
}

// discardNotifier drops every message.
type discardNotifier struct{}

func (discardNotifier) Send(context.Context, domain.Recipient, string, string) error { return nil }
