package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Domenick1991/airbooking-console/internal/domain"
)

const flightColumns = `airid, flightnum, origin, destination, plane, seats, duration`

type FlightRepository interface {
	Exists(ctx context.Context, number string) (bool, error)
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	Create(ctx context.Context, f *domain.Flight) error
	Update(ctx context.Context, f *domain.Flight) error
	ListBetween(ctx context.Context, origin, destination string) (*domain.Table, error)
}

type PGFlightRepository struct {
	db Querier
}

func NewFlightRepository(db Querier) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) Exists(ctx context.Context, number string) (bool, error) {
	n, err := r.db.QueryCount(ctx, `SELECT 1 FROM flight WHERE flightnum = $1`, number)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PGFlightRepository) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	rows, err := r.db.QueryRows(ctx, `SELECT `+flightColumns+` FROM flight WHERE flightnum = $1`, number)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrFlightNotFound
	}
	return scanFlight(rows[0])
}

func (r *PGFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	return r.db.Exec(ctx, `INSERT INTO flight (`+flightColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.AirlineID, f.Number, f.Origin, f.Destination, f.Plane, f.Seats, f.Duration)
}

func (r *PGFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	return r.db.Exec(ctx, `UPDATE flight SET airid = $1, origin = $2, destination = $3, plane = $4, seats = $5, duration = $6 WHERE flightnum = $7`,
		f.AirlineID, f.Origin, f.Destination, f.Plane, f.Seats, f.Duration, f.Number)
}

func (r *PGFlightRepository) ListBetween(ctx context.Context, origin, destination string) (*domain.Table, error) {
	return r.db.Query(ctx, `SELECT `+flightColumns+` FROM flight WHERE origin = $1 AND destination = $2`, origin, destination)
}

// scanFlight reads a row in flightColumns order. Character columns come back blank padded.
func scanFlight(row []string) (*domain.Flight, error) {
	if len(row) != 7 {
		return nil, fmt.Errorf("flight row has %d columns, want 7", len(row))
	}
	airID, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse airid: %w", err)
	}
	seats, err := strconv.Atoi(strings.TrimSpace(row[5]))
	if err != nil {
		return nil, fmt.Errorf("parse seats: %w", err)
	}
	duration, err := strconv.Atoi(strings.TrimSpace(row[6]))
	if err != nil {
		return nil, fmt.Errorf("parse duration: %w", err)
	}
	return &domain.Flight{
		AirlineID:   airID,
		Number:      strings.TrimSpace(row[1]),
		Origin:      strings.TrimSpace(row[2]),
		Destination: strings.TrimSpace(row[3]),
		Plane:       strings.TrimSpace(row[4]),
		Seats:       seats,
		Duration:    duration,
	}, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
