package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type PaymentSvc interface {
	CreateIntent(ctx context.Context, req domain.QuoteRequest) (*domain.PaymentIntent, error)
	Settle(ctx context.Context, req domain.SettleRequest) (*domain.Booking, error)
}

type DiscountSvc interface {
	ApplyCoupon(ctx context.Context, req domain.ApplyCouponRequest) (*domain.DiscountResult, error)
}

type BookingSvc interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	RequestCancellation(ctx context.Context, req domain.CancellationRequest) (*domain.Booking, error)
	DecideCancellation(ctx context.Context, d domain.CancellationDecision) (*domain.Booking, error)
}

type AvailabilitySvc interface {
	IsAvailable(ctx context.Context, hotelID string, checkIn, checkOut time.Time) (bool, error)
}

type WalletSvc interface {
	History(ctx context.Context, userID string) (*domain.Wallet, error)
}

type UserSvc interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type OTPSvc interface {
	Issue(ctx context.Context, email string) error
}

type Handler struct {
	paymentService      PaymentSvc
	discountService     DiscountSvc
	bookingService      BookingSvc
	availabilityService AvailabilitySvc
	walletService       WalletSvc
	userService         UserSvc
	otpService          OTPSvc
}

type Services struct {
	Payment      PaymentSvc
	Discount     DiscountSvc
	Booking      BookingSvc
	Availability AvailabilitySvc
	Wallet       WalletSvc
	User         UserSvc
	OTP          OTPSvc
}

func NewHandler(s Services) *Handler {
	return &Handler{
		paymentService:      s.Payment,
		discountService:     s.Discount,
		bookingService:      s.Booking,
		availabilityService: s.Availability,
		walletService:       s.Wallet,
		userService:         s.User,
		otpService:          s.OTP,
	}
}

// Stays

func (h *Handler) CheckAvailability(c *ginext.Context) {
	hotelID := c.Param("id")

	checkIn, err := parseDate(c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_in, expected YYYY-MM-DD or RFC3339"})
		return
	}
	checkOut, err := parseDate(c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_out, expected YYYY-MM-DD or RFC3339"})
		return
	}

	ok, err := h.availabilityService.IsAvailable(c.Request.Context(), hotelID, checkIn, checkOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		HotelID:   hotelID,
		CheckIn:   checkIn.Format(time.RFC3339),
		CheckOut:  checkOut.Format(time.RFC3339),
		Available: ok,
	})
}

func (h *Handler) CreateIntent(c *ginext.Context) {
	var req dto.StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	stay, err := toStay(c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	quote, err := domain.NewQuoteRequest(stay)
	if err != nil {
		h.handleError(c, err)
		return
	}

	intent, err := h.paymentService.CreateIntent(c.Request.Context(), quote)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToIntentResponse(intent))
}

func (h *Handler) ApplyCoupon(c *ginext.Context) {
	var req dto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in, err := domain.NewApplyCouponRequest(req.Code, req.UserID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	res, err := h.discountService.ApplyCoupon(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDiscountResponse(res))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	stay, err := toStay(c.Param("id"), req.StayRequest)
	if err != nil {
		h.handleError(c, err)
		return
	}

	guest := domain.GuestDetails{Name: req.Guest.Name, Email: req.Guest.Email, Phone: req.Guest.Phone}
	in, err := domain.NewSettleRequest(stay, guest, domain.PaymentMethod(req.PaymentMethod), req.PaymentIntentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.paymentService.Settle(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RequestCancellation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in, err := domain.NewCancellationRequest(id, req.UserID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.RequestCancellation(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DecideCancellation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in, err := domain.NewCancellationDecision(id, req.ManagerID, *req.Accept)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.DecideCancellation(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) GetWallet(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	wallet, err := h.walletService.History(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

func (h *Handler) IssueOTP(c *ginext.Context) {
	var req dto.IssueOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.otpService.Issue(c.Request.Context(), req.Email); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, ginext.H{"status": "sent"})
}

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in, err := domain.NewRegisterRequest(req.Name, req.Email, req.TelegramChatID, req.ReferralCode, req.OTP)
	if err != nil {
		h.handleError(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrCouponAlreadyApplied),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrPaymentNotSucceeded):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentMismatch),
		errors.Is(err, domain.ErrCouponInvalid),
		errors.Is(err, domain.ErrGatewayRejected):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrOTPInvalid):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrGatewayUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "payment provider unavailable, try again"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func toStay(hotelID string, req dto.StayRequest) (domain.StayRequest, error) {
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return domain.StayRequest{}, fmt.Errorf("%w: invalid check_in", domain.ErrValidation)
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return domain.StayRequest{}, fmt.Errorf("%w: invalid check_out", domain.ErrValidation)
	}

	return domain.StayRequest{
		HotelID:       hotelID,
		UserID:        req.UserID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		AdultCount:    req.AdultCount,
		ChildCount:    req.ChildCount,
		ExtraBedCount: req.ExtraBedCount,
	}, nil
}

// parseDate accepts a calendar date or a full RFC3339 timestamp, in UTC.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
