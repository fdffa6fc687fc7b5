package shipment

import "time"

type ShipmentDB struct {
	ID              int64
	WarehouseID     int64
	AssignedTruckID *int64
	WeightTons      float64
	VolumeM3        float64
	NumBoxes        int
	Origin          string
	Destination     string
	Deadline        time.Time
	Splittable      bool
	Stackable       bool
	Hazardous       bool
	TempSensitive   bool
	Status          string
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ShipmentEventDB struct {
	ID         int64
	ShipmentID int64
	Status     string
	Location   string
	OccurredAt time.Time
}
