package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: field %s failed on %q", ErrValidation, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return nil
}

func validateStay(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("%w: check_in and check_out are required", ErrValidation)
	}
	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: check_out must be after check_in", ErrValidation)
	}
	return nil
}

// StayRequest is shared by quoting and settlement.
type StayRequest struct {
	HotelID       string    `validate:"required"`
	UserID        string    `validate:"required"`
	CheckIn       time.Time
	CheckOut      time.Time
	AdultCount    int `validate:"gte=1"`
	ChildCount    int `validate:"gte=0"`
	ExtraBedCount int `validate:"gte=0"`
}

func (r StayRequest) Stay() StayRange {
	return StayRange{CheckIn: r.CheckIn.UTC(), CheckOut: r.CheckOut.UTC()}
}

func (r StayRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return validateStay(r.CheckIn, r.CheckOut)
}

type QuoteRequest struct {
	StayRequest
}

func NewQuoteRequest(stay StayRequest) (QuoteRequest, error) {
	r := QuoteRequest{StayRequest: stay}
	return r, r.Validate()
}

type SettleRequest struct {
	StayRequest
	Guest           GuestDetails
	PaymentMethod   PaymentMethod `validate:"required,oneof=wallet card"`
	PaymentIntentID string
}

func NewSettleRequest(stay StayRequest, guest GuestDetails, method PaymentMethod, intentID string) (SettleRequest, error) {
	r := SettleRequest{
		StayRequest:     stay,
		Guest:           guest,
		PaymentMethod:   method,
		PaymentIntentID: strings.TrimSpace(intentID),
	}
	return r, r.Validate()
}

func (r SettleRequest) Validate() error {
	if err := r.StayRequest.Validate(); err != nil {
		return err
	}
	if err := validateStruct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.Guest.Name) == "" {
		return fmt.Errorf("%w: guest name is required", ErrValidation)
	}
	switch r.PaymentMethod {
	case PaymentMethodCard:
		if r.PaymentIntentID == "" {
			return fmt.Errorf("%w: payment_intent_id is required for card payments", ErrValidation)
		}
	case PaymentMethodWallet:
		if r.PaymentIntentID != "" {
			return fmt.Errorf("%w: payment_intent_id is not accepted for wallet payments", ErrValidation)
		}
	}
	return nil
}

type ApplyCouponRequest struct {
	Code            string `validate:"required,max=64"`
	UserID          string `validate:"required"`
	PaymentIntentID string `validate:"required"`
}

func NewApplyCouponRequest(code, userID, intentID string) (ApplyCouponRequest, error) {
	r := ApplyCouponRequest{
		Code:            strings.ToUpper(strings.TrimSpace(code)),
		UserID:          userID,
		PaymentIntentID: strings.TrimSpace(intentID),
	}
	return r, r.Validate()
}

func (r ApplyCouponRequest) Validate() error {
	return validateStruct(r)
}

type CancellationRequest struct {
	BookingID string `validate:"required"`
	UserID    string `validate:"required"`
	Reason    string `validate:"required,max=1000"`
}

func NewCancellationRequest(bookingID, userID, reason string) (CancellationRequest, error) {
	r := CancellationRequest{BookingID: bookingID, UserID: userID, Reason: strings.TrimSpace(reason)}
	return r, r.Validate()
}

func (r CancellationRequest) Validate() error {
	return validateStruct(r)
}

type CancellationDecision struct {
	BookingID string `validate:"required"`
	ManagerID string `validate:"required"`
	Accept    bool
}

func NewCancellationDecision(bookingID, managerID string, accept bool) (CancellationDecision, error) {
	r := CancellationDecision{BookingID: bookingID, ManagerID: managerID, Accept: accept}
	return r, r.Validate()
}

func (r CancellationDecision) Validate() error {
	return validateStruct(r)
}

type RegisterRequest struct {
	Name           string `validate:"required,max=200"`
	Email          string `validate:"required,email"`
	TelegramChatID *int64
	ReferralCode   string `validate:"omitempty,alphanum,max=32"`
	OTP            string `validate:"required,len=6,numeric"`
}

func NewRegisterRequest(name, email string, chatID *int64, referralCode, otp string) (RegisterRequest, error) {
	r := RegisterRequest{
		Name:           strings.TrimSpace(name),
		Email:          strings.ToLower(strings.TrimSpace(email)),
		TelegramChatID: chatID,
		ReferralCode:   strings.ToUpper(strings.TrimSpace(referralCode)),
		OTP:            strings.TrimSpace(otp),
	}
	return r, r.Validate()
}

func (r RegisterRequest) Validate() error {
	return validateStruct(r)
}
