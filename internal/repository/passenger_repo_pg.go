package repository

import (
	"context"
	"log"
	"strconv"

	"github.com/Domenick1991/airbooking-console/internal/domain"
)

const passengerSequence = "passenger_pid_seq"

type PassengerRepository interface {
	Create(ctx context.Context, p *domain.Passenger) error
	IDByPassport(ctx context.Context, passport string) (int64, error)
}

type PGPassengerRepository struct {
	db Querier
}

func NewPassengerRepository(db Querier) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

// Create inserts p and fills p.ID from the pid sequence when the schema has one.
func (r *PGPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	if err := r.db.Exec(ctx, `INSERT INTO passenger (passnum, fullname, bdate, country) VALUES ($1, $2, $3, $4)`,
		p.Passport, p.FullName, p.BirthDate, p.Country); err != nil {
		return err
	}

	id, err := r.db.CurrSeqVal(ctx, passengerSequence)
	if err != nil {
		log.Printf("passenger %s created, pid unknown: %v", p.Passport, err)
		return nil
	}
	if id > 0 {
		p.ID = int64(id)
	}
	return nil
}

func (r *PGPassengerRepository) IDByPassport(ctx context.Context, passport string) (int64, error) {
	rows, err := r.db.QueryRows(ctx, `SELECT pid FROM passenger WHERE passnum = $1`, passport)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, domain.ErrPassengerNotFound
	}
	return strconv.ParseInt(rows[0][0], 10, 64)
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
