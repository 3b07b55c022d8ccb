package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	e := NewEvent(EventBookingCreated)

	_, err := uuid.Parse(e.ID)
	assert.NoError(t, err)
	assert.Equal(t, EventBookingCreated, e.Type)
	assert.WithinDuration(t, time.Now(), e.OccurredAt, time.Minute)
}

func TestDecodeEvent(t *testing.T) {
	e := NewEvent(EventRatingCreated)
	e.PassengerID = 3
	e.FlightNumber = "AA100"
	e.Score = 5

	data, err := json.Marshal(e)
	require.NoError(t, err)

	got, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, "AA100", got.Key())
	assert.Equal(t, 5, got.Score)

	_, err = DecodeEvent([]byte("{"))
	assert.Error(t, err)
}
