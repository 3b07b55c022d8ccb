package console

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/Domenick1991/airbooking-console/internal/domain"
	"github.com/Domenick1991/airbooking-console/internal/service/booking"
	"github.com/Domenick1991/airbooking-console/internal/service/flights"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) AddPassenger(ctx context.Context, input booking.AddPassengerInput) (*domain.Passenger, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockBookingUseCase) BookFlight(ctx context.Context, input booking.BookFlightInput) (*domain.Booking, *domain.Table, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Booking), args.Get(1).(*domain.Table), args.Error(2)
}

func (m *MockBookingUseCase) ReviewFlight(ctx context.Context, input booking.ReviewInput) (*domain.Rating, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) table(args mock.Arguments) (*domain.Table, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockFlightUseCase) Lookup(ctx context.Context, number string) (*domain.Flight, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) InsertRoute(ctx context.Context, f domain.Flight) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFlightUseCase) UpdateRoute(ctx context.Context, number string, update flights.RouteUpdate) (*domain.Flight, error) {
	args := m.Called(ctx, number, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) ListBetween(ctx context.Context, origin, destination string) (*domain.Table, error) {
	return m.table(m.Called(ctx, origin, destination))
}

func (m *MockFlightUseCase) PopularDestinations(ctx context.Context, k int) (*domain.Table, error) {
	return m.table(m.Called(ctx, k))
}

func (m *MockFlightUseCase) HighestRatedRoutes(ctx context.Context, k int) (*domain.Table, error) {
	return m.table(m.Called(ctx, k))
}

func (m *MockFlightUseCase) FlightsByDuration(ctx context.Context, origin, destination string, k int) (*domain.Table, error) {
	return m.table(m.Called(ctx, origin, destination, k))
}

func (m *MockFlightUseCase) AvailableSeats(ctx context.Context, number, date string) (*domain.Table, error) {
	return m.table(m.Called(ctx, number, date))
}

func run(t *testing.T, input string, b *MockBookingUseCase, f *MockFlightUseCase) string {
	t.Helper()
	var out bytes.Buffer
	err := New(strings.NewReader(input), &out, b, f).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestConsole_ExitChoice(t *testing.T) {
	out := run(t, "10\n", &MockBookingUseCase{}, &MockFlightUseCase{})

	assert.Equal(t, 1, strings.Count(out, "MAIN MENU"))
	assert.Contains(t, out, "10. < EXIT")
}

func TestConsole_InvalidChoiceReprompts(t *testing.T) {
	out := run(t, "abc\n\n10\n", &MockBookingUseCase{}, &MockFlightUseCase{})

	assert.Equal(t, 2, strings.Count(out, "Your input is invalid!"))
	assert.Equal(t, 3, strings.Count(out, "Please make your choice: "))
}

func TestConsole_OutOfRangeChoiceIsNoOp(t *testing.T) {
	b := &MockBookingUseCase{}
	f := &MockFlightUseCase{}

	out := run(t, "42\n0\n10\n", b, f)

	assert.Equal(t, 3, strings.Count(out, "MAIN MENU"))
	assert.Empty(t, b.Calls)
	assert.Empty(t, f.Calls)
}

func TestConsole_EndOfInputExits(t *testing.T) {
	out := run(t, "", &MockBookingUseCase{}, &MockFlightUseCase{})
	assert.Contains(t, out, "MAIN MENU")

	// Input ending in the middle of an operation also ends the loop quietly.
	f := &MockFlightUseCase{}
	run(t, "5\nNYC\n", &MockBookingUseCase{}, f)
	assert.Empty(t, f.Calls)
}

func TestConsole_AddPassenger(t *testing.T) {
	b := &MockBookingUseCase{}
	want := booking.AddPassengerInput{FullName: "Ada Lovelace", Country: "UK", Day: 10, Month: 12, Year: 1990, Passport: "1234567890"}
	b.On("AddPassenger", mock.Anything, want).Return(&domain.Passenger{ID: 4, FullName: "Ada Lovelace"}, nil).Once()

	out := run(t, "1\nAda Lovelace\nUK\nten\n10\n12\n1990\n1234567890\n10\n", b, &MockFlightUseCase{})

	assert.Contains(t, out, "Your input is invalid!")
	assert.Contains(t, out, "Passenger Ada Lovelace created with pid 4")
	b.AssertExpectations(t)
}

func TestConsole_ValidationErrorIsPrintedAndLoopContinues(t *testing.T) {
	b := &MockBookingUseCase{}
	b.On("AddPassenger", mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("invalid input Passenger not created")).Once()

	out := run(t, "1\nAda\nUK\n1\n1\n1990\n123\n10\n", b, &MockFlightUseCase{})

	assert.Contains(t, out, "invalid input Passenger not created")
	assert.Equal(t, 2, strings.Count(out, "MAIN MENU"))
}

func TestConsole_BookFlight(t *testing.T) {
	b := &MockBookingUseCase{}
	in := booking.BookFlightInput{FlightNumber: "AA100", Date: "6/1/2024", Passport: "1234567890"}
	row := &domain.Table{
		Columns: []string{"bookref", "departure", "pid", "flightnum"},
		Rows:    [][]string{{"ABCDE12345", "2024-06-01", "3", "AA100"}},
	}
	b.On("BookFlight", mock.Anything, in).Return(&domain.Booking{Ref: "ABCDE12345"}, row, nil).Once()
	b.On("BookFlight", mock.Anything, in).Return(nil, nil, domain.ErrFlightFull).Once()

	out := run(t, "2\nAA100\n6/1/2024\n1234567890\n2\nAA100\n6/1/2024\n1234567890\n10\n", b, &MockFlightUseCase{})

	assert.Contains(t, out, "Booking ABCDE12345 created")
	assert.Contains(t, out, "bookref")
	assert.Contains(t, out, "ABCDE12345  2024-06-01")
	assert.Contains(t, out, "flight is full")
	b.AssertExpectations(t)
}

func TestConsole_BookFlightWithoutReadBackShowsReference(t *testing.T) {
	b := &MockBookingUseCase{}
	in := booking.BookFlightInput{FlightNumber: "AA100", Date: "6/1/2024", Passport: "1234567890"}
	b.On("BookFlight", mock.Anything, in).Return(&domain.Booking{Ref: "ABCDE12345"}, (*domain.Table)(nil), nil).Once()

	out := run(t, "2\nAA100\n6/1/2024\n1234567890\n10\n", b, &MockFlightUseCase{})

	assert.Contains(t, out, "Booking ABCDE12345 created")
	assert.NotContains(t, out, "bookref")
	b.AssertExpectations(t)
}

func TestConsole_ReviewFlightWithEmptyComment(t *testing.T) {
	b := &MockBookingUseCase{}
	in := booking.ReviewInput{Passport: "1234567890", FlightNumber: "AA100", Score: 5}
	b.On("ReviewFlight", mock.Anything, in).Return(&domain.Rating{Score: 5}, nil).Once()

	out := run(t, "3\n1234567890\nAA100\n5\n\n10\n", b, &MockFlightUseCase{})

	assert.Contains(t, out, "Review recorded")
	b.AssertExpectations(t)
}

func TestConsole_InsertRoute_ShortFlightNumberRepromptsWithoutQuerying(t *testing.T) {
	f := &MockFlightUseCase{}

	out := run(t, "4\nAA10\n", &MockBookingUseCase{}, f)

	assert.Contains(t, out, "Invalid flight number. Please enter a valid flight number.")
	assert.Empty(t, f.Calls)
}

func TestConsole_InsertRoute(t *testing.T) {
	f := &MockFlightUseCase{}
	want := domain.Flight{AirlineID: 1, Number: "AA100", Origin: "NYC", Destination: "LAX", Plane: "A320", Seats: 1, Duration: 300}
	f.On("Lookup", mock.Anything, "AA100").Return(nil, nil).Once()
	f.On("InsertRoute", mock.Anything, want).Return(nil).Once()

	input := strings.Join([]string{"4", "AA10", "AA100", "", "NYC", "LAX", "A320", "0", "1", "300", "1", "10"}, "\n") + "\n"
	out := run(t, input, &MockBookingUseCase{}, f)

	assert.Contains(t, out, "Invalid flight number. Please enter a valid flight number.")
	assert.Contains(t, out, "Empty origin entered. Please enter a valid origin.")
	assert.Contains(t, out, "Flights can not have less than one seat.")
	assert.Contains(t, out, "Flight AA100 added")
	f.AssertNotCalled(t, "Lookup", mock.Anything, "AA10")
	f.AssertExpectations(t)
}

func TestConsole_UpdateRoute(t *testing.T) {
	f := &MockFlightUseCase{}
	stored := &domain.Flight{AirlineID: 1, Number: "AA100", Origin: "NYC", Destination: "LAX", Plane: "A320", Seats: 1, Duration: 300}
	want := flights.RouteUpdate{Destination: "SFO", Seats: flights.Keep, Duration: 320, AirlineID: flights.Keep}
	f.On("Lookup", mock.Anything, "AA100").Return(stored, nil).Once()
	f.On("UpdateRoute", mock.Anything, "AA100", want).Return(stored, nil).Once()

	input := strings.Join([]string{"4", "AA100", "", "SFO", "", "-1", "0", "320", "-1", "10"}, "\n") + "\n"
	out := run(t, input, &MockBookingUseCase{}, f)

	assert.Contains(t, out, "Flight can not have a duration less than 1.")
	assert.Contains(t, out, "Flight AA100 updated")
	f.AssertExpectations(t)
}

func TestConsole_ListBetweenNone(t *testing.T) {
	f := &MockFlightUseCase{}
	f.On("ListBetween", mock.Anything, "NYC", "LAX").Return(&domain.Table{Columns: []string{"flightnum"}}, nil).Once()

	out := run(t, "5\nNYC\nLAX\n10\n", &MockBookingUseCase{}, f)

	assert.Contains(t, out, "none\n")
	f.AssertExpectations(t)
}

func TestConsole_Reports(t *testing.T) {
	f := &MockFlightUseCase{}
	popular := &domain.Table{Columns: []string{"destination", "choices"}, Rows: [][]string{{"LAX", "5"}, {"SFO", "3"}, {"ORD", "2"}}}
	f.On("PopularDestinations", mock.Anything, 3).Return(popular, nil).Once()
	f.On("HighestRatedRoutes", mock.Anything, 0).Return(nil, domain.NewValidationError("cannot look for negative or 0 results")).Once()
	f.On("FlightsByDuration", mock.Anything, "NYC", "LAX", 2).Return(&domain.Table{}, nil).Once()
	f.On("AvailableSeats", mock.Anything, "AA100", "6/1/2024").Return(nil, errors.New("connection reset")).Once()

	out := run(t, "6\n3\n7\n0\n8\nNYC\nLAX\n2\n9\nAA100\n6/1/2024\n10\n", &MockBookingUseCase{}, f)

	lax := strings.Index(out, "LAX")
	sfo := strings.Index(out, "SFO")
	ord := strings.Index(out, "ORD")
	assert.True(t, lax >= 0 && lax < sfo && sfo < ord)
	assert.Contains(t, out, "cannot look for negative or 0 results")
	assert.Contains(t, out, "none")
	assert.Contains(t, out, "connection reset")
	assert.Equal(t, 5, strings.Count(out, "MAIN MENU"))
	f.AssertExpectations(t)
}
