package ports

import (
	"context"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
)

type HotelRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	HasOverlap(ctx context.Context, hotelID string, stay domain.StayRange) (bool, error)
}
