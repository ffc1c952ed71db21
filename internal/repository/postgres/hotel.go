package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type HotelRepository struct {
	base
}

func NewHotelRepo(db *dbpg.DB) *HotelRepository {
	return &HotelRepository{base: newBase(db)}
}

func (r *HotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	query := `SELECT id, manager_id, name, price_per_night, extra_bed_charge,
			         max_adults, max_children, max_extra_beds
			  FROM hotels
			  WHERE id = $1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	var h domain.Hotel
	if err = row.Scan(
		&h.ID, &h.ManagerID, &h.Name, &h.PricePerNight, &h.ExtraBedCharge,
		&h.MaxAdults, &h.MaxChildren, &h.MaxExtraBeds,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("scan hotel: %w", err)
	}

	return &h, nil
}

func (r *HotelRepository) HasOverlap(ctx context.Context, hotelID string, stay domain.StayRange) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM hotels WHERE id = $1),
			         EXISTS (SELECT 1 FROM bookings
			                 WHERE hotel_id = $1
			                   AND status <> $2
			                   AND check_in < $4
			                   AND check_out > $3)`

	row, err := r.queryRow(ctx, query, hotelID, domain.BookingStatusCancelled, stay.CheckIn, stay.CheckOut)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	var exists, overlap bool
	if err = row.Scan(&exists, &overlap); err != nil {
		return false, fmt.Errorf("scan overlap: %w", err)
	}
	if !exists {
		return false, domain.ErrHotelNotFound
	}

	return overlap, nil
}
