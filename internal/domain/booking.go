package domain

import "time"

type BookingStatus string

const (
	// BookingStatusPending is the storage default. No flow assigns it.
	BookingStatusPending        BookingStatus = "pending"
	BookingStatusCompleted      BookingStatus = "completed"
	BookingStatusCancelPending  BookingStatus = "cancel_pending"
	BookingStatusCancelled      BookingStatus = "cancelled"
	BookingStatusCancelRejected BookingStatus = "cancel_rejected"
)

// ActiveStatuses hold inventory: every status except cancelled.
var ActiveStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusCompleted,
	BookingStatusCancelPending,
	BookingStatusCancelRejected,
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusCompleted:     {BookingStatusCancelPending},
	BookingStatusCancelPending: {BookingStatusCancelled, BookingStatusCancelRejected},
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCancelRejected
}

func (s BookingStatus) HoldsInventory() bool {
	return s != BookingStatusCancelled
}

type PaymentMethod string

const (
	PaymentMethodWallet PaymentMethod = "wallet"
	PaymentMethodCard   PaymentMethod = "card"
)

type GuestDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Booking struct {
	ID                 string        `json:"id"`
	HotelID            string        `json:"hotel_id"`
	UserID             string        `json:"user_id"`
	Guest              GuestDetails  `json:"guest"`
	AdultCount         int           `json:"adult_count"`
	ChildCount         int           `json:"child_count"`
	ExtraBedCount      int           `json:"extra_bed_count"`
	CheckIn            time.Time     `json:"check_in"`
	CheckOut           time.Time     `json:"check_out"`
	TotalCost          int64         `json:"total_cost"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
	PaymentIntentID    *string       `json:"payment_intent_id,omitempty"`
	Status             BookingStatus `json:"status"`
	CancellationReason *string       `json:"cancellation_reason,omitempty"`
	ReminderSent       bool          `json:"reminder_sent"`
	ReminderAttempts   int           `json:"reminder_attempts"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (b *Booking) Stay() StayRange {
	return StayRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// StayRange is the half-open interval [CheckIn, CheckOut).
type StayRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (r StayRange) Valid() bool {
	return r.CheckOut.After(r.CheckIn)
}

// Overlaps uses half-open semantics, so back-to-back stays do not overlap.
func (r StayRange) Overlaps(other StayRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Nights rounds partial days up; a stay always counts at least one night.
func (r StayRange) Nights() int64 {
	d := r.CheckOut.Sub(r.CheckIn)
	nights := int64(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights
}
