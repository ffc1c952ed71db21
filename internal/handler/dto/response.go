package dto

import (
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
)

type BookingResponse struct {
	ID                 string  `json:"id"`
	HotelID            string  `json:"hotel_id"`
	UserID             string  `json:"user_id"`
	GuestName          string  `json:"guest_name"`
	GuestEmail         string  `json:"guest_email,omitempty"`
	AdultCount         int     `json:"adult_count"`
	ChildCount         int     `json:"child_count"`
	ExtraBedCount      int     `json:"extra_bed_count"`
	CheckIn            string  `json:"check_in"`
	CheckOut           string  `json:"check_out"`
	TotalCost          int64   `json:"total_cost"`
	PaymentMethod      string  `json:"payment_method"`
	PaymentIntentID    *string `json:"payment_intent_id,omitempty"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

type IntentResponse struct {
	ID           string `json:"id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret"`
}

type DiscountResponse struct {
	PaymentIntentID string `json:"payment_intent_id"`
	Code            string `json:"code"`
	OriginalAmount  int64  `json:"original_amount"`
	DiscountAmount  int64  `json:"discount_amount"`
	NewAmount       int64  `json:"new_amount"`
}

type AvailabilityResponse struct {
	HotelID   string `json:"hotel_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

type WalletEntryResponse struct {
	ID      string `json:"id"`
	Amount  int64  `json:"amount"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

type WalletResponse struct {
	Balance int64                 `json:"balance"`
	History []WalletEntryResponse `json:"history"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	Wallet         int64  `json:"wallet"`
	ReferralCode   string `json:"referral_code"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		HotelID:            b.HotelID,
		UserID:             b.UserID,
		GuestName:          b.Guest.Name,
		GuestEmail:         b.Guest.Email,
		AdultCount:         b.AdultCount,
		ChildCount:         b.ChildCount,
		ExtraBedCount:      b.ExtraBedCount,
		CheckIn:            b.CheckIn.Format(time.RFC3339),
		CheckOut:           b.CheckOut.Format(time.RFC3339),
		TotalCost:          b.TotalCost,
		PaymentMethod:      string(b.PaymentMethod),
		PaymentIntentID:    b.PaymentIntentID,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
	}
}

func ToIntentResponse(p *domain.PaymentIntent) IntentResponse {
	return IntentResponse{
		ID:           p.ID,
		Amount:       p.Amount,
		Currency:     p.Currency,
		Status:       string(p.Status),
		ClientSecret: p.ClientSecret,
	}
}

func ToDiscountResponse(r *domain.DiscountResult) DiscountResponse {
	return DiscountResponse{
		PaymentIntentID: r.PaymentIntentID,
		Code:            r.Code,
		OriginalAmount:  r.OriginalAmount,
		DiscountAmount:  r.DiscountAmount,
		NewAmount:       r.NewAmount,
	}
}

func ToWalletResponse(w *domain.Wallet) WalletResponse {
	history := make([]WalletEntryResponse, 0, len(w.History))
	for _, e := range w.History {
		history = append(history, WalletEntryResponse{
			ID:      e.ID,
			Amount:  e.Amount,
			Message: e.Message,
			Date:    e.Date.Format(time.RFC3339),
		})
	}
	return WalletResponse{Balance: w.Balance, History: history}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
		Wallet:         u.Wallet,
		ReferralCode:   u.ReferralCode,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
