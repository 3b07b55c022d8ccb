package repository

import (
	"context"

	"github.com/Domenick1991/airbooking-console/internal/domain"
)

type RatingRepository interface {
	Exists(ctx context.Context, passengerID int64, flightNumber string) (bool, error)
	Create(ctx context.Context, r *domain.Rating) error
}

type PGRatingRepository struct {
	db Querier
}

func NewRatingRepository(db Querier) RatingRepository {
	return &PGRatingRepository{db: db}
}

func (r *PGRatingRepository) Exists(ctx context.Context, passengerID int64, flightNumber string) (bool, error) {
	n, err := r.db.QueryCount(ctx, `SELECT 1 FROM ratings WHERE pid = $1 AND flightnum = $2`, passengerID, flightNumber)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PGRatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	return r.db.Exec(ctx, `INSERT INTO ratings (pid, flightnum, score, comment) VALUES ($1, $2, $3, $4)`,
		rating.PassengerID, rating.FlightNumber, rating.Score, rating.Comment)
}

var _ RatingRepository = (*PGRatingRepository)(nil)
