package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Domenick1991/airbooking-console/internal/domain"
)

type BookingRepository interface {
	CountOn(ctx context.Context, flightNumber string, departure time.Time) (int, error)
	RefExists(ctx context.Context, ref string) (bool, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByRef(ctx context.Context, ref string) (*domain.Table, error)
	HasFlown(ctx context.Context, passengerID int64, flightNumber string) (bool, error)
}

type PGBookingRepository struct {
	db Querier
}

func NewBookingRepository(db Querier) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) CountOn(ctx context.Context, flightNumber string, departure time.Time) (int, error) {
	rows, err := r.db.QueryRows(ctx, `SELECT COUNT(*) FROM booking WHERE flightnum = $1 AND departure = $2`, flightNumber, departure)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(rows[0][0])
	if err != nil {
		return 0, fmt.Errorf("parse booking count: %w", err)
	}
	return n, nil
}

func (r *PGBookingRepository) RefExists(ctx context.Context, ref string) (bool, error) {
	n, err := r.db.QueryCount(ctx, `SELECT 1 FROM booking WHERE bookref = $1`, ref)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PGBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.Exec(ctx, `INSERT INTO booking (bookref, departure, pid, flightnum) VALUES ($1, $2, $3, $4)`,
		b.Ref, b.Departure, b.PassengerID, b.FlightNumber)
}

func (r *PGBookingRepository) GetByRef(ctx context.Context, ref string) (*domain.Table, error) {
	return r.db.Query(ctx, `SELECT bookref, departure, pid, flightnum FROM booking WHERE bookref = $1`, ref)
}

// HasFlown reports whether the passenger holds a booking on the flight that has already departed.
func (r *PGBookingRepository) HasFlown(ctx context.Context, passengerID int64, flightNumber string) (bool, error) {
	n, err := r.db.QueryCount(ctx, `SELECT 1 FROM booking WHERE pid = $1 AND flightnum = $2 AND departure <= current_date`, passengerID, flightNumber)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
