package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/airbooking-console/internal/domain"
	"github.com/Domenick1991/airbooking-console/internal/service/booking"
	"github.com/Domenick1991/airbooking-console/internal/service/flights"
)

func (c *Console) addPassenger(ctx context.Context) error {
	var in booking.AddPassengerInput
	var err error
	if in.FullName, err = c.prompt.line("Enter Name:"); err != nil {
		return err
	}
	if in.Country, err = c.prompt.line("Enter country:"); err != nil {
		return err
	}
	if in.Day, err = c.prompt.integer("Enter Birth Date day:"); err != nil {
		return err
	}
	if in.Month, err = c.prompt.integer("Enter Birth month:"); err != nil {
		return err
	}
	if in.Year, err = c.prompt.integer("Enter Birth Year:"); err != nil {
		return err
	}
	if in.Passport, err = c.prompt.line("Enter passport Number:"); err != nil {
		return err
	}

	p, err := c.bookings.AddPassenger(ctx, in)
	if err != nil {
		return c.report(err)
	}
	if p.ID > 0 {
		okColor.Fprintf(c.out, "Passenger %s created with pid %d\n", p.FullName, p.ID)
	} else {
		okColor.Fprintf(c.out, "Passenger %s created\n", p.FullName)
	}
	return nil
}

func (c *Console) bookFlight(ctx context.Context) error {
	var in booking.BookFlightInput
	var err error
	if in.FlightNumber, err = c.prompt.line("Enter Flight Number:"); err != nil {
		return err
	}
	if in.Date, err = c.prompt.line("Enter travel date (M/D/YYYY):"); err != nil {
		return err
	}
	if in.Passport, err = c.prompt.line("Enter passport Number:"); err != nil {
		return err
	}

	b, row, err := c.bookings.BookFlight(ctx, in)
	if err != nil {
		return c.report(err)
	}
	okColor.Fprintf(c.out, "Booking %s created\n", b.Ref)
	if !row.Empty() {
		return c.report(printTable(c.out, row))
	}
	return nil
}

func (c *Console) reviewFlight(ctx context.Context) error {
	var in booking.ReviewInput
	var err error
	if in.Passport, err = c.prompt.line("Enter passport Number:"); err != nil {
		return err
	}
	if in.FlightNumber, err = c.prompt.line("Enter Flight Number:"); err != nil {
		return err
	}
	if in.Score, err = c.prompt.integer("Enter Score 0-5:"); err != nil {
		return err
	}
	if in.Comment, err = c.prompt.line("Enter Comment or just press Enter to skip:"); err != nil {
		return err
	}

	if _, err := c.bookings.ReviewFlight(ctx, in); err != nil {
		return c.report(err)
	}
	okColor.Fprintln(c.out, "Review recorded")
	return nil
}

func (c *Console) insertOrUpdateRoute(ctx context.Context) error {
	number, err := c.prompt.until("Enter Flight Number:", "Invalid flight number. Please enter a valid flight number.",
		flights.ValidFlightNumber)
	if err != nil {
		return err
	}
	number = strings.TrimSpace(number)

	current, err := c.flights.Lookup(ctx, number)
	if err != nil {
		return c.report(err)
	}
	if current == nil {
		return c.insertRoute(ctx, number)
	}
	return c.updateRoute(ctx, number)
}

func (c *Console) insertRoute(ctx context.Context, number string) error {
	f := domain.Flight{Number: number}
	nonEmpty := func(s string) bool { return strings.TrimSpace(s) != "" }
	positive := func(n int) bool { return n >= 1 }

	var err error
	if f.Origin, err = c.prompt.until("Enter Origin:", "Empty origin entered. Please enter a valid origin.", nonEmpty); err != nil {
		return err
	}
	if f.Destination, err = c.prompt.until("Enter Destination:", "Empty Destination Entered. Please Enter a valid destination.", nonEmpty); err != nil {
		return err
	}
	if f.Plane, err = c.prompt.until("Enter plane type:", "Empty Plane type entered. Please enter a valid plane type.", nonEmpty); err != nil {
		return err
	}
	if f.Seats, err = c.prompt.integerUntil("Enter seating capacity:",
		"Flights can not have less than one seat. Please enter a valid seating capacity.", positive); err != nil {
		return err
	}
	if f.Duration, err = c.prompt.integerUntil("Enter duration:",
		"Flight can not have a duration less than 1. Please enter a valid flight duration.", positive); err != nil {
		return err
	}
	airID, err := c.prompt.integer("Enter airid:")
	if err != nil {
		return err
	}
	f.AirlineID = int64(airID)
	f.Origin = strings.TrimSpace(f.Origin)
	f.Destination = strings.TrimSpace(f.Destination)
	f.Plane = strings.TrimSpace(f.Plane)

	if err := c.flights.InsertRoute(ctx, f); err != nil {
		return c.report(err)
	}
	okColor.Fprintf(c.out, "Flight %s added\n", number)
	return nil
}

func (c *Console) updateRoute(ctx context.Context, number string) error {
	var u flights.RouteUpdate
	positiveOrKeep := func(n int) bool { return n >= 1 || n == flights.Keep }

	var err error
	if u.Origin, err = c.prompt.line("Enter Origin(enter to skip):"); err != nil {
		return err
	}
	if u.Destination, err = c.prompt.line("Enter Destination(enter to skip):"); err != nil {
		return err
	}
	if u.Plane, err = c.prompt.line("Enter plane type(enter to skip):"); err != nil {
		return err
	}
	if u.Seats, err = c.prompt.integerUntil("Enter seating capacity(-1 to skip):",
		"Flights can not have less than one seat. Please enter a valid seating capacity.", positiveOrKeep); err != nil {
		return err
	}
	if u.Duration, err = c.prompt.integerUntil("Enter duration(-1 to skip):",
		"Flight can not have a duration less than 1. Please enter a valid flight duration.", positiveOrKeep); err != nil {
		return err
	}
	airID, err := c.prompt.integer("Enter airid(-1 to skip):")
	if err != nil {
		return err
	}
	u.AirlineID = int64(airID)
	u.Origin = strings.TrimSpace(u.Origin)
	u.Destination = strings.TrimSpace(u.Destination)
	u.Plane = strings.TrimSpace(u.Plane)

	if _, err := c.flights.UpdateRoute(ctx, number, u); err != nil {
		return c.report(err)
	}
	okColor.Fprintf(c.out, "Flight %s updated\n", number)
	return nil
}

func (c *Console) listBetween(ctx context.Context) error {
	origin, err := c.prompt.line("Enter Origin:")
	if err != nil {
		return err
	}
	destination, err := c.prompt.line("Enter Destination:")
	if err != nil {
		return err
	}
	return c.show(c.flights.ListBetween(ctx, origin, destination))
}

func (c *Console) popularDestinations(ctx context.Context) error {
	k, err := c.prompt.integer("How many destinations would you like to see?")
	if err != nil {
		return err
	}
	return c.show(c.flights.PopularDestinations(ctx, k))
}

func (c *Console) highestRatedRoutes(ctx context.Context) error {
	k, err := c.prompt.integer("How many routes would you like to see?")
	if err != nil {
		return err
	}
	return c.show(c.flights.HighestRatedRoutes(ctx, k))
}

func (c *Console) flightsByDuration(ctx context.Context) error {
	origin, err := c.prompt.line("Enter Origin:")
	if err != nil {
		return err
	}
	destination, err := c.prompt.line("Enter Destination:")
	if err != nil {
		return err
	}
	k, err := c.prompt.integer("How many flights would you like to see?")
	if err != nil {
		return err
	}
	return c.show(c.flights.FlightsByDuration(ctx, origin, destination, k))
}

func (c *Console) availableSeats(ctx context.Context) error {
	number, err := c.prompt.line("Enter Flight Number:")
	if err != nil {
		return err
	}
	date, err := c.prompt.line("Enter date (M/D/YYYY):")
	if err != nil {
		return err
	}
	return c.show(c.flights.AvailableSeats(ctx, number, date))
}

// show prints a listing result, "none" when it has no rows.
func (c *Console) show(t *domain.Table, err error) error {
	if err != nil {
		return c.report(err)
	}
	if t.Empty() {
		noneColor.Fprintln(c.out, "none")
		return nil
	}
	if err := printTable(c.out, t); err != nil {
		return c.report(fmt.Errorf("print result: %w", err))
	}
	return nil
}
