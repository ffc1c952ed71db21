package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/handler/dto"
	hmocks "github.com/jomin07/HavenHues-sub000/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type svcMocks struct {
	payment      *hmocks.MockPaymentSvc
	discount     *hmocks.MockDiscountSvc
	booking      *hmocks.MockBookingSvc
	availability *hmocks.MockAvailabilitySvc
	wallet       *hmocks.MockWalletSvc
	user         *hmocks.MockUserSvc
	otp          *hmocks.MockOTPSvc
}

func setupRouter(t *testing.T) (*svcMocks, http.Handler) {
	t.Helper()
	m := &svcMocks{
		payment:      hmocks.NewMockPaymentSvc(t),
		discount:     hmocks.NewMockDiscountSvc(t),
		booking:      hmocks.NewMockBookingSvc(t),
		availability: hmocks.NewMockAvailabilitySvc(t),
		wallet:       hmocks.NewMockWalletSvc(t),
		user:         hmocks.NewMockUserSvc(t),
		otp:          hmocks.NewMockOTPSvc(t),
	}

	h := NewHandler(Services{
		Payment:      m.payment,
		Discount:     m.discount,
		Booking:      m.booking,
		Availability: m.availability,
		Wallet:       m.wallet,
		User:         m.user,
		OTP:          m.otp,
	})

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/hotels/:id/availability", h.CheckAvailability)
		api.POST("/hotels/:id/intents", h.CreateIntent)
		api.POST("/hotels/:id/bookings", h.CreateBooking)
		api.POST("/intents/:id/coupon", h.ApplyCoupon)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.RequestCancellation)
		api.POST("/bookings/:id/decision", h.DecideCancellation)
		api.POST("/otp", h.IssueOTP)
		api.POST("/users", h.Register)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)
		api.GET("/users/:id/wallet", h.GetWallet)
	}

	return m, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func stayBody(userID string) dto.StayRequest {
	return dto.StayRequest{
		UserID:     userID,
		CheckIn:    "2026-04-01",
		CheckOut:   "2026-04-03",
		AdultCount: 2,
	}
}

func newBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            uuid.New().String(),
		HotelID:       "h1",
		UserID:        uuid.New().String(),
		Guest:         domain.GuestDetails{Name: "Asha"},
		AdultCount:    2,
		CheckIn:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
		TotalCost:     20000,
		PaymentMethod: domain.PaymentMethodWallet,
		Status:        status,
		CreatedAt:     time.Now(),
	}
}

// --- Availability ---

func TestHandler_CheckAvailability(t *testing.T) {
	m, r := setupRouter(t)

	in := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)
	m.availability.EXPECT().IsAvailable(mock.Anything, "h1", in, out).Return(false, nil)

	w := doJSON(r, http.MethodGet, "/api/hotels/h1/availability?check_in=2026-04-01&check_out=2026-04-03", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
}

func TestHandler_CheckAvailability_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/hotels/h1/availability?check_in=tomorrow&check_out=2026-04-03", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckAvailability_HotelNotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.availability.EXPECT().IsAvailable(mock.Anything, "nope", mock.Anything, mock.Anything).
		Return(false, domain.ErrHotelNotFound)

	w := doJSON(r, http.MethodGet, "/api/hotels/nope/availability?check_in=2026-04-01&check_out=2026-04-03", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Intents & coupons ---

func TestHandler_CreateIntent_Success(t *testing.T) {
	m, r := setupRouter(t)
	userID := uuid.New().String()

	m.payment.EXPECT().CreateIntent(mock.Anything, mock.MatchedBy(func(q domain.QuoteRequest) bool {
		return q.HotelID == "h1" && q.UserID == userID && q.AdultCount == 2
	})).Return(&domain.PaymentIntent{ID: "pi_1", Amount: 20000, Currency: "inr", ClientSecret: "s"}, nil)

	w := doJSON(r, http.MethodPost, "/api/hotels/h1/intents", stayBody(userID))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.IntentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(20000), resp.Amount)
	assert.Equal(t, "s", resp.ClientSecret)
}

func TestHandler_CreateIntent_CheckOutBeforeCheckIn(t *testing.T) {
	_, r := setupRouter(t)

	body := stayBody(uuid.New().String())
	body.CheckIn, body.CheckOut = "2026-04-03", "2026-04-01"

	w := doJSON(r, http.MethodPost, "/api/hotels/h1/intents", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateIntent_SlotUnavailable(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().CreateIntent(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotUnavailable)

	w := doJSON(r, http.MethodPost, "/api/hotels/h1/intents", stayBody(uuid.New().String()))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ApplyCoupon(t *testing.T) {
	m, r := setupRouter(t)

	m.discount.EXPECT().ApplyCoupon(mock.Anything, domain.ApplyCouponRequest{
		Code: "SAVE20", UserID: "u1", PaymentIntentID: "pi_1",
	}).Return(&domain.DiscountResult{
		PaymentIntentID: "pi_1", Code: "SAVE20", OriginalAmount: 20000, DiscountAmount: 4000, NewAmount: 16000,
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/intents/pi_1/coupon", dto.ApplyCouponRequest{Code: " save20 ", UserID: "u1"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.DiscountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(16000), resp.NewAmount)
}

func TestHandler_ApplyCoupon_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid", err: domain.ErrCouponInvalid, want: http.StatusUnprocessableEntity},
		{name: "already applied", err: domain.ErrCouponAlreadyApplied, want: http.StatusConflict},
		{name: "not found", err: domain.ErrCouponNotFound, want: http.StatusNotFound},
		{name: "gateway down", err: domain.ErrGatewayUnavailable, want: http.StatusServiceUnavailable},
		{name: "gateway rejected", err: domain.ErrGatewayRejected, want: http.StatusUnprocessableEntity},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)
			m.discount.EXPECT().ApplyCoupon(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doJSON(r, http.MethodPost, "/api/intents/pi_1/coupon", dto.ApplyCouponRequest{Code: "SAVE20", UserID: "u1"})

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

// --- Bookings ---

func TestHandler_CreateBooking_Wallet(t *testing.T) {
	m, r := setupRouter(t)
	b := newBooking(domain.BookingStatusCompleted)

	m.payment.EXPECT().Settle(mock.Anything, mock.MatchedBy(func(req domain.SettleRequest) bool {
		return req.PaymentMethod == domain.PaymentMethodWallet && req.Guest.Name == "Asha"
	})).Return(b, nil)

	w := doJSON(r, http.MethodPost, "/api/hotels/h1/bookings", dto.SettleRequest{
		StayRequest:   stayBody(b.UserID),
		Guest:         dto.GuestRequest{Name: "Asha"},
		PaymentMethod: "wallet",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, b.ID, resp.ID)
	assert.Equal(t, "completed", resp.Status)
}

func TestHandler_CreateBooking_CardWithoutIntent(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/hotels/h1/bookings", dto.SettleRequest{
		StayRequest:   stayBody(uuid.New().String()),
		Guest:         dto.GuestRequest{Name: "Asha"},
		PaymentMethod: "card",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "insufficient funds", err: domain.ErrInsufficientFunds, want: http.StatusPaymentRequired},
		{name: "slot taken", err: domain.ErrSlotUnavailable, want: http.StatusConflict},
		{name: "user missing", err: domain.ErrUserNotFound, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)
			m.payment.EXPECT().Settle(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doJSON(r, http.MethodPost, "/api/hotels/h1/bookings", dto.SettleRequest{
				StayRequest:   stayBody(uuid.New().String()),
				Guest:         dto.GuestRequest{Name: "Asha"},
				PaymentMethod: "wallet",
			})

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/bookings/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.New().String()

	m.booking.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := doJSON(r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RequestCancellation(t *testing.T) {
	m, r := setupRouter(t)
	b := newBooking(domain.BookingStatusCancelPending)

	m.booking.EXPECT().RequestCancellation(mock.Anything, domain.CancellationRequest{
		BookingID: b.ID, UserID: b.UserID, Reason: "plans changed",
	}).Return(b, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+b.ID+"/cancel", dto.CancelRequest{UserID: b.UserID, Reason: "plans changed"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancel_pending", resp.Status)
}

func TestHandler_RequestCancellation_Forbidden(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.New().String()

	m.booking.EXPECT().RequestCancellation(mock.Anything, mock.Anything).Return(nil, domain.ErrForbidden)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+id+"/cancel", dto.CancelRequest{UserID: "someone", Reason: "x"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DecideCancellation_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.New().String()
	accept := true

	m.booking.EXPECT().DecideCancellation(mock.Anything, domain.CancellationDecision{
		BookingID: id, ManagerID: "m1", Accept: true,
	}).Return(nil, domain.ErrInvalidTransition)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+id+"/decision", dto.DecisionRequest{ManagerID: "m1", Accept: &accept})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DecideCancellation_MissingAccept(t *testing.T) {
	_, r := setupRouter(t)
	id := uuid.New().String()

	w := doJSON(r, http.MethodPost, "/api/bookings/"+id+"/decision", map[string]string{"manager_id": "m1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserBookings(t *testing.T) {
	m, r := setupRouter(t)
	userID := uuid.New().String()

	m.booking.EXPECT().ListByUser(mock.Anything, userID).Return([]*domain.Booking{
		newBooking(domain.BookingStatusCompleted),
		newBooking(domain.BookingStatusCancelled),
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/users/"+userID+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Users & wallet ---

func TestHandler_GetWallet(t *testing.T) {
	m, r := setupRouter(t)
	userID := uuid.New().String()

	m.wallet.EXPECT().History(mock.Anything, userID).Return(&domain.Wallet{
		Balance: 5000,
		History: []domain.WalletEntry{{ID: "e1", Amount: 5000, Message: "Referral sign-up bonus", Date: time.Now()}},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/users/"+userID+"/wallet", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.WalletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5000), resp.Balance)
	assert.Len(t, resp.History, 1)
}

func TestHandler_IssueOTP(t *testing.T) {
	m, r := setupRouter(t)

	m.otp.EXPECT().Issue(mock.Anything, "guest@example.com").Return(nil)

	w := doJSON(r, http.MethodPost, "/api/otp", dto.IssueOTPRequest{Email: "guest@example.com"})

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestHandler_IssueOTP_BadEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/otp", dto.IssueOTPRequest{Email: "nope"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Register(mock.Anything, mock.MatchedBy(func(req domain.RegisterRequest) bool {
		return req.Email == "guest@example.com" && req.ReferralCode == "ABCD2345"
	})).Return(&domain.User{ID: uuid.New().String(), Name: "Guest", Email: "guest@example.com", Wallet: 5000}, nil)

	w := doJSON(r, http.MethodPost, "/api/users", dto.RegisterRequest{
		Name: "Guest", Email: "Guest@Example.com", ReferralCode: "abcd2345", OTP: "123456",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5000), resp.Wallet)
}

func TestHandler_Register_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "otp", err: domain.ErrOTPInvalid, want: http.StatusBadRequest},
		{name: "email taken", err: domain.ErrEmailTaken, want: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)
			m.user.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doJSON(r, http.MethodPost, "/api/users", dto.RegisterRequest{
				Name: "Guest", Email: "guest@example.com", OTP: "123456",
			})

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_GetUser(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.New().String()

	m.user.EXPECT().GetByID(mock.Anything, id).Return(&domain.User{ID: id, Name: "Guest"}, nil)

	w := doJSON(r, http.MethodGet, "/api/users/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
