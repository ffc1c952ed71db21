package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// recordingLogger keeps the messages passed to Info.
type recordingLogger struct {
	logger.Logger
	mu    sync.Mutex
	infos []string
}

func (l *recordingLogger) Info(msg string, args ...any) {
	l.mu.Lock()
	l.infos = append(l.infos, msg)
	l.mu.Unlock()
	l.Logger.Info(msg, args...)
}

func (l *recordingLogger) infoMessages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.infos...)
}

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return time.Date(2026, 4, n, 14, 0, 0, 0, time.UTC)
}

func testHotel() domain.Hotel {
	return domain.Hotel{
		ID:             "h1",
		ManagerID:      "m1",
		Name:           "Seaside Inn",
		PricePerNight:  10000,
		ExtraBedCharge: 2000,
		MaxAdults:      4,
		MaxChildren:    2,
		MaxExtraBeds:   2,
	}
}

func stayRequest(hotelID, userID string, in, out time.Time) domain.StayRequest {
	return domain.StayRequest{
		HotelID:    hotelID,
		UserID:     userID,
		CheckIn:    in,
		CheckOut:   out,
		AdultCount: 2,
	}
}

// passthroughTx runs fn directly, for mocked repositories.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ ports.Transactor = passthroughTx{}

// memServices wires every service onto one memStore and fakeGateway.
type memServices struct {
	store    *memStore
	gateway  *fakeGateway
	ledger   *LedgerService
	payment  *PaymentService
	discount *DiscountService
	booking  *BookingService
}

func newMemServices(t *testing.T) *memServices {
	t.Helper()
	log := newTestLogger(t)
	store := newMemStore()
	gw := newFakeGateway()

	ledger := NewLedgerService(memUsers{store}, memWallets{store}, log)
	ledger.now = func() time.Time { return fixedNow }

	payment := NewPaymentService(memHotels{store}, memBookings{store}, memUsers{store}, ledger, gw, store, discardNotifier{}, log, "usd")
	payment.now = func() time.Time { return fixedNow }

	discount := NewDiscountService(memCoupons{store}, gw, store, log)
	discount.now = func() time.Time { return fixedNow }

	booking := NewBookingService(memBookings{store}, memHotels{store}, memUsers{store}, ledger, store, discardNotifier{}, log)

	return &memServices{
		store:    store,
		gateway:  gw,
		ledger:   ledger,
		payment:  payment,
		discount: discount,
		booking:  booking,
	}
}
