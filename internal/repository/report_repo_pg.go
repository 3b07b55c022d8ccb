package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/airbooking-console/internal/domain"
)

// ReportRepository holds the read-only listing queries.
type ReportRepository interface {
	PopularDestinations(ctx context.Context, k int) (*domain.Table, error)
	HighestRatedRoutes(ctx context.Context, k int) (*domain.Table, error)
	FlightsByDuration(ctx context.Context, origin, destination string, k int) (*domain.Table, error)
	SeatAvailability(ctx context.Context, flightNumber string, departure time.Time) (*domain.Table, error)
}

type PGReportRepository struct {
	db Querier
}

func NewReportRepository(db Querier) ReportRepository {
	return &PGReportRepository{db: db}
}

func (r *PGReportRepository) PopularDestinations(ctx context.Context, k int) (*domain.Table, error) {
	return r.db.Query(ctx, `SELECT destination, COUNT(*) AS choices
		FROM flight
		GROUP BY destination
		ORDER BY choices DESC
		LIMIT $1`, k)
}

// HighestRatedRoutes ranks flights by SUM(score)/COUNT(score), which is integer division
// on the ratings table.
func (r *PGReportRepository) HighestRatedRoutes(ctx context.Context, k int) (*domain.Table, error) {
	return r.db.Query(ctx, `SELECT a.name, f.flightnum, average.avg_score
		FROM (SELECT flightnum, SUM(score) / COUNT(score) AS avg_score FROM ratings GROUP BY flightnum) AS average
		JOIN flight f ON f.flightnum = average.flightnum
		JOIN airline a ON a.airid = f.airid
		ORDER BY average.avg_score DESC
		LIMIT $1`, k)
}

func (r *PGReportRepository) FlightsByDuration(ctx context.Context, origin, destination string, k int) (*domain.Table, error) {
	return r.db.Query(ctx, `SELECT a.name, f.flightnum, f.origin, f.destination, f.duration, f.plane
		FROM flight f
		JOIN airline a ON a.airid = f.airid
		WHERE f.origin = $1 AND f.destination = $2
		ORDER BY f.duration DESC
		LIMIT $3`, origin, destination, k)
}

func (r *PGReportRepository) SeatAvailability(ctx context.Context, flightNumber string, departure time.Time) (*domain.Table, error) {
	return r.db.Query(ctx, `SELECT f.flightnum, f.origin, f.destination, $2::date AS departure,
			COUNT(b.bookref) AS booked, f.seats, f.seats - COUNT(b.bookref) AS available
		FROM flight f
		LEFT JOIN booking b ON b.flightnum = f.flightnum AND b.departure = $2::date
		WHERE f.flightnum = $1
		GROUP BY f.flightnum, f.origin, f.destination, f.seats`, flightNumber, departure)
}

var _ ReportRepository = (*PGReportRepository)(nil)
