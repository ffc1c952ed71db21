package mongodb

import (
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
)

type hotelDoc struct {
	ID             string       `bson:"_id"`
	ManagerID      string       `bson:"managerId"`
	Name           string       `bson:"name"`
	PricePerNight  int64        `bson:"pricePerNight"`
	ExtraBedCharge int64        `bson:"extraBedCharge"`
	MaxAdults      int          `bson:"maxAdults"`
	MaxChildren    int          `bson:"maxChildren"`
	MaxExtraBeds   int          `bson:"maxExtraBeds"`
	Bookings       []bookingDoc `bson:"bookings"`
}

func (d *hotelDoc) toDomain() *domain.Hotel {
	h := &domain.Hotel{
		ID:             d.ID,
		ManagerID:      d.ManagerID,
		Name:           d.Name,
		PricePerNight:  d.PricePerNight,
		ExtraBedCharge: d.ExtraBedCharge,
		MaxAdults:      d.MaxAdults,
		MaxChildren:    d.MaxChildren,
		MaxExtraBeds:   d.MaxExtraBeds,
	}
	for i := range d.Bookings {
		h.Bookings = append(h.Bookings, *d.Bookings[i].toDomain(d.ID))
	}
	return h
}

// bookingDoc is embedded in its hotel, so the hotel id is implied.
type bookingDoc struct {
	ID                 string    `bson:"_id"`
	UserID             string    `bson:"userId"`
	GuestName          string    `bson:"guestName"`
	GuestEmail         string    `bson:"guestEmail"`
	GuestPhone         string    `bson:"guestPhone,omitempty"`
	AdultCount         int       `bson:"adultCount"`
	ChildCount         int       `bson:"childCount"`
	ExtraBedCount      int       `bson:"extraBedCount"`
	CheckIn            time.Time `bson:"checkIn"`
	CheckOut           time.Time `bson:"checkOut"`
	TotalCost          int64     `bson:"totalCost"`
	PaymentMethod      string    `bson:"paymentMethod"`
	PaymentIntentID    *string   `bson:"paymentIntentId,omitempty"`
	Status             string    `bson:"status"`
	CancellationReason *string   `bson:"cancellationReason,omitempty"`
	ReminderSent       bool      `bson:"reminderSent"`
	ReminderAttempts   int       `bson:"reminderAttempts"`
	CreatedAt          time.Time `bson:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt"`
}

func newBookingDoc(b *domain.Booking) bookingDoc {
	return bookingDoc{
		ID:                 b.ID,
		UserID:             b.UserID,
		GuestName:          b.Guest.Name,
		GuestEmail:         b.Guest.Email,
		GuestPhone:         b.Guest.Phone,
		AdultCount:         b.AdultCount,
		ChildCount:         b.ChildCount,
		ExtraBedCount:      b.ExtraBedCount,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		TotalCost:          b.TotalCost,
		PaymentMethod:      string(b.PaymentMethod),
		PaymentIntentID:    b.PaymentIntentID,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		ReminderSent:       b.ReminderSent,
		ReminderAttempts:   b.ReminderAttempts,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (d *bookingDoc) toDomain(hotelID string) *domain.Booking {
	return &domain.Booking{
		ID:                 d.ID,
		HotelID:            hotelID,
		UserID:             d.UserID,
		Guest:              domain.GuestDetails{Name: d.GuestName, Email: d.GuestEmail, Phone: d.GuestPhone},
		AdultCount:         d.AdultCount,
		ChildCount:         d.ChildCount,
		ExtraBedCount:      d.ExtraBedCount,
		CheckIn:            d.CheckIn.UTC(),
		CheckOut:           d.CheckOut.UTC(),
		TotalCost:          d.TotalCost,
		PaymentMethod:      domain.PaymentMethod(d.PaymentMethod),
		PaymentIntentID:    d.PaymentIntentID,
		Status:             domain.BookingStatus(d.Status),
		CancellationReason: d.CancellationReason,
		ReminderSent:       d.ReminderSent,
		ReminderAttempts:   d.ReminderAttempts,
		CreatedAt:          d.CreatedAt.UTC(),
		UpdatedAt:          d.UpdatedAt.UTC(),
	}
}

type walletEntryDoc struct {
	ID      string    `bson:"_id"`
	Amount  int64     `bson:"amount"`
	Message string    `bson:"message"`
	Key     string    `bson:"key,omitempty"`
	Date    time.Time `bson:"date"`
}

type userDoc struct {
	ID             string           `bson:"_id"`
	Name           string           `bson:"name"`
	Email          string           `bson:"email"`
	TelegramChatID *int64           `bson:"telegramChatId,omitempty"`
	Wallet         int64            `bson:"wallet"`
	WalletHistory  []walletEntryDoc `bson:"walletHistory"`
	ReferralCode   string           `bson:"referralCode"`
	ReferredBy     *string          `bson:"referredBy,omitempty"`
	CreatedAt      time.Time        `bson:"createdAt"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:             d.ID,
		Name:           d.Name,
		Email:          d.Email,
		TelegramChatID: d.TelegramChatID,
		Wallet:         d.Wallet,
		ReferralCode:   d.ReferralCode,
		ReferredBy:     d.ReferredBy,
		CreatedAt:      d.CreatedAt.UTC(),
	}
}

type couponDoc struct {
	Code          string    `bson:"_id"`
	DiscountType  string    `bson:"discountType"`
	Discount      int64     `bson:"discount"`
	MaxDiscount   *int64    `bson:"maxDiscount,omitempty"`
	MinimumAmount int64     `bson:"minimumAmount"`
	Limit         int       `bson:"limit"`
	Expiry        time.Time `bson:"expiry"`
	Status        string    `bson:"status"`
	UsedBy        []string  `bson:"usedBy"`
}

func (d *couponDoc) toDomain() *domain.Coupon {
	return &domain.Coupon{
		Code:          d.Code,
		DiscountType:  domain.DiscountType(d.DiscountType),
		Discount:      d.Discount,
		MaxDiscount:   d.MaxDiscount,
		MinimumAmount: d.MinimumAmount,
		Limit:         d.Limit,
		Expiry:        d.Expiry.UTC(),
		Status:        domain.CouponStatus(d.Status),
		UsedBy:        d.UsedBy,
	}
}

type redemptionDoc struct {
	PaymentIntentID string    `bson:"_id"`
	Code            string    `bson:"code"`
	UserID          string    `bson:"userId"`
	OriginalAmount  int64     `bson:"originalAmount"`
	DiscountAmount  int64     `bson:"discountAmount"`
	NewAmount       int64     `bson:"newAmount"`
	Status          string    `bson:"status"`
	CreatedAt       time.Time `bson:"createdAt"`
}

func (d *redemptionDoc) toDomain() *domain.Redemption {
	return &domain.Redemption{
		PaymentIntentID: d.PaymentIntentID,
		Code:            d.Code,
		UserID:          d.UserID,
		OriginalAmount:  d.OriginalAmount,
		DiscountAmount:  d.DiscountAmount,
		NewAmount:       d.NewAmount,
		Status:          domain.RedemptionStatus(d.Status),
		CreatedAt:       d.CreatedAt.UTC(),
	}
}
