package notify

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airbooking-console/internal/kafka"
	"github.com/stretchr/testify/assert"
)

func TestNotifier_Send(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf)
	ctx := context.Background()

	booking := kafka.NewEvent(kafka.EventBookingCreated)
	booking.PassengerID = 3
	booking.BookingRef = "ABCDE12345"
	booking.FlightNumber = "AA100"
	booking.Departure = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	rating := kafka.NewEvent(kafka.EventRatingCreated)
	rating.PassengerID = 3
	rating.FlightNumber = "AA100"
	rating.Score = 4

	assert.NoError(t, n.Send(ctx, booking))
	assert.NoError(t, n.Send(ctx, rating))
	assert.NoError(t, n.Send(ctx, kafka.NewEvent("unknown")))

	assert.Equal(t,
		"notify passenger 3: booking ABCDE12345 confirmed on flight AA100 departing 2024-06-01\n"+
			"notify passenger 3: thanks for rating flight AA100 4/5\n",
		buf.String())
}
