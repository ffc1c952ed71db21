package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports"
)

type AvailabilityService struct {
	hotelRepo ports.HotelRepo
}

func NewAvailabilityService(hotelRepo ports.HotelRepo) *AvailabilityService {
	return &AvailabilityService{hotelRepo: hotelRepo}
}

// IsAvailable is advisory. The booking insert re-checks under the hotel lock.
func (s *AvailabilityService) IsAvailable(ctx context.Context, hotelID string, checkIn, checkOut time.Time) (bool, error) {
	stay := domain.StayRange{CheckIn: checkIn.UTC(), CheckOut: checkOut.UTC()}
	if !stay.Valid() {
		return false, fmt.Errorf("%w: check_out must be after check_in", domain.ErrValidation)
	}

	overlap, err := s.hotelRepo.HasOverlap(ctx, hotelID, stay)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	return !overlap, nil
}
