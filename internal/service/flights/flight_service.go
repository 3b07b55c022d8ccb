package flights

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Domenick1991/airbooking-console/internal/domain"
	"github.com/Domenick1991/airbooking-console/internal/repository"
)

const MinFlightNumberLength = 5

// Keep marks an optional integer field of RouteUpdate as unchanged.
const Keep = -1

type FlightUseCase interface {
	Lookup(ctx context.Context, number string) (*domain.Flight, error)
	InsertRoute(ctx context.Context, f domain.Flight) error
	UpdateRoute(ctx context.Context, number string, update RouteUpdate) (*domain.Flight, error)
	ListBetween(ctx context.Context, origin, destination string) (*domain.Table, error)
	PopularDestinations(ctx context.Context, k int) (*domain.Table, error)
	HighestRatedRoutes(ctx context.Context, k int) (*domain.Table, error)
	FlightsByDuration(ctx context.Context, origin, destination string, k int) (*domain.Table, error)
	AvailableSeats(ctx context.Context, number, date string) (*domain.Table, error)
}

// RouteUpdate carries optional changes: empty strings and Keep leave the stored value.
type RouteUpdate struct {
	Origin      string
	Destination string
	Plane       string
	Seats       int
	Duration    int
	AirlineID   int64
}

type FlightService struct {
	flights repository.FlightRepository
	reports repository.ReportRepository
}

func NewFlightService(flights repository.FlightRepository, reports repository.ReportRepository) *FlightService {
	return &FlightService{flights: flights, reports: reports}
}

func ValidFlightNumber(number string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(number)) >= MinFlightNumberLength
}

// Lookup returns the stored flight, or nil without error when there is none.
func (s *FlightService) Lookup(ctx context.Context, number string) (*domain.Flight, error) {
	if !ValidFlightNumber(number) {
		return nil, domain.NewValidationError("Invalid flight number. Please enter a valid flight number.")
	}
	exists, err := s.flights.Exists(ctx, number)
	if err != nil || !exists {
		return nil, err
	}
	return s.flights.GetByNumber(ctx, number)
}

func (s *FlightService) InsertRoute(ctx context.Context, f domain.Flight) error {
	switch {
	case !ValidFlightNumber(f.Number):
		return domain.NewValidationError("Invalid flight number. Please enter a valid flight number.")
	case f.Origin == "" || f.Destination == "" || f.Plane == "":
		return domain.NewValidationError("origin, destination and plane type are required")
	case f.Seats < 1:
		return domain.NewValidationError("Flights can not have less than one seat.")
	case f.Duration < 1:
		return domain.NewValidationError("Flight can not have a duration less than 1.")
	}
	return s.flights.Create(ctx, &f)
}

func (s *FlightService) UpdateRoute(ctx context.Context, number string, update RouteUpdate) (*domain.Flight, error) {
	if (update.Seats < 1 && update.Seats != Keep) || (update.Duration < 1 && update.Duration != Keep) {
		return nil, domain.NewValidationError("seats and duration must be at least 1")
	}

	current, err := s.flights.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	next := *current
	if update.Origin != "" {
		next.Origin = update.Origin
	}
	if update.Destination != "" {
		next.Destination = update.Destination
	}
	if update.Plane != "" {
		next.Plane = update.Plane
	}
	if update.Seats != Keep {
		next.Seats = update.Seats
	}
	if update.Duration != Keep {
		next.Duration = update.Duration
	}
	if update.AirlineID != Keep {
		next.AirlineID = update.AirlineID
	}

	if err := s.flights.Update(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

func (s *FlightService) ListBetween(ctx context.Context, origin, destination string) (*domain.Table, error) {
	return s.flights.ListBetween(ctx, strings.TrimSpace(origin), strings.TrimSpace(destination))
}

func (s *FlightService) PopularDestinations(ctx context.Context, k int) (*domain.Table, error) {
	if err := validateK(k); err != nil {
		return nil, err
	}
	return s.reports.PopularDestinations(ctx, k)
}

func (s *FlightService) HighestRatedRoutes(ctx context.Context, k int) (*domain.Table, error) {
	if err := validateK(k); err != nil {
		return nil, err
	}
	return s.reports.HighestRatedRoutes(ctx, k)
}

func (s *FlightService) FlightsByDuration(ctx context.Context, origin, destination string, k int) (*domain.Table, error) {
	if err := validateK(k); err != nil {
		return nil, err
	}
	return s.reports.FlightsByDuration(ctx, strings.TrimSpace(origin), strings.TrimSpace(destination), k)
}

func (s *FlightService) AvailableSeats(ctx context.Context, number, date string) (*domain.Table, error) {
	departure, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	table, err := s.reports.SeatAvailability(ctx, strings.TrimSpace(number), departure)
	if err != nil {
		return nil, err
	}
	if table.Empty() {
		return nil, domain.ErrFlightNotFound
	}
	return table, nil
}

func validateK(k int) error {
	if k < 1 {
		return domain.NewValidationError("cannot look for negative or 0 results")
	}
	return nil
}

// IsNotFound reports whether err means the flight does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrFlightNotFound)
}

var _ FlightUseCase = (*FlightService)(nil)
