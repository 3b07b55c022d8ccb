package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Domenick1991/airbooking-console/internal/domain"
	"github.com/Domenick1991/airbooking-console/internal/kafka"
	"github.com/Domenick1991/airbooking-console/internal/repository"
)

const (
	minFlightNumberLength = 5
	maxFlightNumberLength = 8
	minBirthYear          = 1900
	maxScore              = 5
	maxReferenceAttempts  = 5
)

type BookingUseCase interface {
	AddPassenger(ctx context.Context, input AddPassengerInput) (*domain.Passenger, error)
	BookFlight(ctx context.Context, input BookFlightInput) (*domain.Booking, *domain.Table, error)
	ReviewFlight(ctx context.Context, input ReviewInput) (*domain.Rating, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	passengers repository.PassengerRepository
	flights    repository.FlightRepository
	bookings   repository.BookingRepository
	ratings    repository.RatingRepository
	producer   Producer
	topic      string
	references func() (string, error)
}

type AddPassengerInput struct {
	FullName string
	Country  string
	Day      int
	Month    int
	Year     int
	Passport string
}

type BookFlightInput struct {
	FlightNumber string
	Date         string
	Passport     string
}

type ReviewInput struct {
	Passport     string
	FlightNumber string
	Score        int
	Comment      string
}

type BookingServiceOption func(*BookingService)

// WithEvents publishes booking and rating events to topic.
func WithEvents(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.topic = topic
	}
}

func WithReferenceGenerator(gen func() (string, error)) BookingServiceOption {
	return func(s *BookingService) {
		s.references = gen
	}
}

func NewBookingService(
	passengers repository.PassengerRepository,
	flights repository.FlightRepository,
	bookings repository.BookingRepository,
	ratings repository.RatingRepository,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		passengers: passengers,
		flights:    flights,
		bookings:   bookings,
		ratings:    ratings,
		references: GenerateReference,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) AddPassenger(ctx context.Context, input AddPassengerInput) (*domain.Passenger, error) {
	name := strings.TrimSpace(input.FullName)
	country := strings.TrimSpace(input.Country)
	passport := strings.TrimSpace(input.Passport)

	if name == "" || country == "" || utf8.RuneCountInString(passport) != domain.PassportLength ||
		input.Day < 1 || input.Day > 31 || input.Month < 1 || input.Month > 12 || input.Year < minBirthYear {
		return nil, domain.NewValidationError("invalid input Passenger not created")
	}

	birth := time.Date(input.Year, time.Month(input.Month), input.Day, 0, 0, 0, 0, time.UTC)
	if birth.Day() != input.Day {
		return nil, domain.NewValidationError("invalid input Passenger not created")
	}

	p := &domain.Passenger{
		Passport:  passport,
		FullName:  name,
		BirthDate: birth,
		Country:   country,
	}
	if err := s.passengers.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *BookingService) BookFlight(ctx context.Context, input BookFlightInput) (*domain.Booking, *domain.Table, error) {
	departure, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}
	number := strings.TrimSpace(input.FlightNumber)
	if n := utf8.RuneCountInString(number); n < minFlightNumberLength || n > maxFlightNumberLength {
		return nil, nil, domain.NewValidationError("invalid flight number")
	}

	pid, err := s.passengers.IDByPassport(ctx, strings.TrimSpace(input.Passport))
	if err != nil {
		return nil, nil, err
	}

	flight, err := s.flights.GetByNumber(ctx, number)
	if err != nil {
		return nil, nil, err
	}

	booked, err := s.bookings.CountOn(ctx, number, departure)
	if err != nil {
		return nil, nil, err
	}
	if flight.Seats-booked <= 0 {
		return nil, nil, domain.ErrFlightFull
	}

	ref, err := s.newReference(ctx)
	if err != nil {
		return nil, nil, err
	}

	b := &domain.Booking{
		Ref:          ref,
		Departure:    departure,
		PassengerID:  pid,
		FlightNumber: number,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, nil, err
	}

	event := kafka.NewEvent(kafka.EventBookingCreated)
	event.PassengerID = pid
	event.FlightNumber = number
	event.BookingRef = ref
	event.Departure = departure
	s.publish(ctx, event)

	// The booking is stored at this point; a failed read-back leaves the row nil.
	row, err := s.bookings.GetByRef(ctx, ref)
	if err != nil {
		log.Printf("WARNING: booking %s created, read-back failed: %v", ref, err)
		return b, nil, nil
	}
	return b, row, nil
}

func (s *BookingService) ReviewFlight(ctx context.Context, input ReviewInput) (*domain.Rating, error) {
	if input.Score < 0 || input.Score > maxScore {
		return nil, domain.NewValidationError("Invalid Score Provided")
	}
	number := strings.TrimSpace(input.FlightNumber)

	pid, err := s.passengers.IDByPassport(ctx, strings.TrimSpace(input.Passport))
	if err != nil {
		return nil, err
	}

	exists, err := s.flights.Exists(ctx, number)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrFlightNotFound
	}

	flown, err := s.bookings.HasFlown(ctx, pid, number)
	if err != nil {
		return nil, err
	}
	if !flown {
		return nil, domain.ErrNeverFlown
	}

	reviewed, err := s.ratings.Exists(ctx, pid, number)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, domain.ErrAlreadyReviewed
	}

	rating := &domain.Rating{
		PassengerID:  pid,
		FlightNumber: number,
		Score:        input.Score,
		Comment:      input.Comment,
	}
	if err := s.ratings.Create(ctx, rating); err != nil {
		return nil, err
	}

	event := kafka.NewEvent(kafka.EventRatingCreated)
	event.PassengerID = pid
	event.FlightNumber = number
	event.Score = rating.Score
	event.Comment = rating.Comment
	s.publish(ctx, event)

	return rating, nil
}

// newReference draws references until one is not yet used by a booking.
func (s *BookingService) newReference(ctx context.Context) (string, error) {
	for i := 0; i < maxReferenceAttempts; i++ {
		ref, err := s.references()
		if err != nil {
			return "", fmt.Errorf("generate booking reference: %w", err)
		}
		taken, err := s.bookings.RefExists(ctx, ref)
		if err != nil {
			return "", err
		}
		if !taken {
			return ref, nil
		}
	}
	return "", errors.New("could not generate an unused booking reference")
}

// publish never fails the operation that produced the event.
func (s *BookingService) publish(ctx context.Context, event kafka.Event) {
	if s.producer == nil || s.topic == "" {
		return
	}
	if err := s.producer.Publish(ctx, s.topic, event.Key(), event); err != nil {
		log.Printf("WARNING: failed to publish %s event %s: %v", event.Type, event.ID, err)
	}
}

var _ BookingUseCase = (*BookingService)(nil)
