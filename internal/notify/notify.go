package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/Domenick1991/airbooking-console/internal/kafka"
)

// Notifier turns booking and rating events into passenger notices.
type Notifier struct {
	out io.Writer
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Send(ctx context.Context, event kafka.Event) error {
	switch event.Type {
	case kafka.EventBookingCreated:
		_, err := fmt.Fprintf(n.out, "notify passenger %d: booking %s confirmed on flight %s departing %s\n",
			event.PassengerID, event.BookingRef, event.FlightNumber, event.Departure.Format("2006-01-02"))
		return err
	case kafka.EventRatingCreated:
		_, err := fmt.Fprintf(n.out, "notify passenger %d: thanks for rating flight %s %d/5\n",
			event.PassengerID, event.FlightNumber, event.Score)
		return err
	default:
		return nil
	}
}
