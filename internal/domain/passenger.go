package domain

import "time"

const PassportLength = 10

type Passenger struct {
	ID        int64
	Passport  string
	FullName  string
	BirthDate time.Time
	Country   string
}
