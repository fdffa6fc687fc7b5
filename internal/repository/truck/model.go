package truck

import "time"

type TruckDB struct {
	ID            int64
	OperatorID    int64
	ModelCode     string
	VIN           string
	Manufacturer  string
	ModelYear     int
	PrimaryType   string
	MaxWeightTons float64
	MaxVolumeM3   float64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type RouteDB struct {
	ID            int64
	TruckID       int64
	Name          string
	StartLocation string
	EndLocation   string
	DistanceKm    *float64
	SequenceOrder int
}

// CandidateDB is one truck/route pair matching a candidate query. The same
// truck appears once per route record servicing the lane.
type CandidateDB struct {
	Truck TruckDB
	Route RouteDB
}
