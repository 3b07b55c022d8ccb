package domain

import "time"

const BookingRefLength = 10

type Booking struct {
	Ref          string
	Departure    time.Time
	PassengerID  int64
	FlightNumber string
}

type Rating struct {
	PassengerID  int64
	FlightNumber string
	Score        int
	Comment      string
}
