package domain

import "fmt"

type Hotel struct {
	ID             string    `json:"id"`
	ManagerID      string    `json:"manager_id"`
	Name           string    `json:"name"`
	PricePerNight  int64     `json:"price_per_night"`
	ExtraBedCharge int64     `json:"extra_bed_charge"`
	MaxAdults      int       `json:"max_adults"`
	MaxChildren    int       `json:"max_children"`
	MaxExtraBeds   int       `json:"max_extra_beds"`
	Bookings       []Booking `json:"bookings,omitempty"`
}

// IsAvailable checks the stay against the bookings loaded on the hotel.
func (h *Hotel) IsAvailable(stay StayRange) bool {
	for i := range h.Bookings {
		b := &h.Bookings[i]
		if b.Status.HoldsInventory() && b.Stay().Overlaps(stay) {
			return false
		}
	}
	return true
}

func (h *Hotel) CheckOccupancy(adults, children, extraBeds int) error {
	if h.MaxAdults > 0 && adults > h.MaxAdults {
		return fmt.Errorf("%w: at most %d adults allowed", ErrValidation, h.MaxAdults)
	}
	if h.MaxChildren > 0 && children > h.MaxChildren {
		return fmt.Errorf("%w: at most %d children allowed", ErrValidation, h.MaxChildren)
	}
	if extraBeds > h.MaxExtraBeds {
		return fmt.Errorf("%w: at most %d extra beds allowed", ErrValidation, h.MaxExtraBeds)
	}
	return nil
}

func (h *Hotel) Price(stay StayRange, extraBeds int) int64 {
	perNight := h.PricePerNight + int64(extraBeds)*h.ExtraBedCharge
	return stay.Nights() * perNight
}
