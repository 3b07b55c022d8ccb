package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Domenick1991/airbooking-console/internal/service/booking"
	"github.com/Domenick1991/airbooking-console/internal/service/flights"
)

const exitChoice = 10

var menu = []string{
	"1. Add Passenger",
	"2. Book Flight",
	"3. Review Flight",
	"4. Insert or Update Flight",
	"5. List Flights From Origin to Destination",
	"6. List Most Popular Destinations",
	"7. List Highest Rated Destinations",
	"8. List Flights to Destination in order of Duration",
	"9. Find Number of Available Seats on a given Flight",
	"10. < EXIT",
}

// Console is the interactive menu over the booking and flight use cases.
type Console struct {
	prompt   *prompter
	out      io.Writer
	bookings booking.BookingUseCase
	flights  flights.FlightUseCase
}

func New(in io.Reader, out io.Writer, bookings booking.BookingUseCase, flights flights.FlightUseCase) *Console {
	return &Console{
		prompt:   &prompter{in: bufio.NewReader(in), out: out},
		out:      out,
		bookings: bookings,
		flights:  flights,
	}
}

// Run shows the menu until the user exits or the input ends. Operation failures are
// printed and never end the loop.
func (c *Console) Run(ctx context.Context) error {
	handlers := map[int]func(context.Context) error{
		1: c.addPassenger,
		2: c.bookFlight,
		3: c.reviewFlight,
		4: c.insertOrUpdateRoute,
		5: c.listBetween,
		6: c.popularDestinations,
		7: c.highestRatedRoutes,
		8: c.flightsByDuration,
		9: c.availableSeats,
	}

	for {
		c.printMenu()
		choice, err := c.prompt.choice()
		if err != nil {
			return endOfInput(err)
		}
		if choice == exitChoice {
			return nil
		}
		handler, ok := handlers[choice]
		if !ok {
			continue
		}
		if err := handler(ctx); err != nil {
			return endOfInput(err)
		}
	}
}

func (c *Console) printMenu() {
	headerColor.Fprintln(c.out, "MAIN MENU")
	fmt.Fprintln(c.out, "---------")
	for _, item := range menu {
		fmt.Fprintln(c.out, item)
	}
}

// report prints an operation failure. Input errors are returned so the loop can stop.
func (c *Console) report(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return err
	}
	errorColor.Fprintln(c.out, err.Error())
	return nil
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
