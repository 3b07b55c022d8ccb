package domain

type Flight struct {
	AirlineID   int64
	Number      string
	Origin      string
	Destination string
	Plane       string
	Seats       int
	Duration    int
}

type Airline struct {
	ID   int64
	Name string
}
