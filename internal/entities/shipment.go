package entities

import "time"

type Shipment struct {
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
	Status          ShipmentStatusType
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ShipmentStatusType string

const (
	ShipmentPending   ShipmentStatusType = "PENDING"
	ShipmentOptimized ShipmentStatusType = "OPTIMIZED"
	ShipmentBooked    ShipmentStatusType = "BOOKED"
	ShipmentInTransit ShipmentStatusType = "IN-TRANSIT"
	ShipmentDelivered ShipmentStatusType = "DELIVERED"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

// Next returns the sole legal successor status. The lifecycle is a straight
// chain with no back-transitions and no skipping; DELIVERED has no successor.
func (s ShipmentStatusType) Next() (ShipmentStatusType, bool) {
	next, ok := shipmentTransitions[s]
	return next, ok
}

var shipmentTransitions = map[ShipmentStatusType]ShipmentStatusType{
	ShipmentPending:   ShipmentOptimized,
	ShipmentOptimized: ShipmentBooked,
	ShipmentBooked:    ShipmentInTransit,
	ShipmentInTransit: ShipmentDelivered,
}

func IsValidShipmentStatus(status string) bool {
	switch ShipmentStatusType(status) {
	case ShipmentPending, ShipmentOptimized, ShipmentBooked, ShipmentInTransit, ShipmentDelivered:
		return true
	default:
		return false
	}
}

// LocationOnRoute is the event location recorded when a shipment enters IN-TRANSIT.
const LocationOnRoute = "ON_ROUTE"

// ShipmentEvent is an append-only record of a single lifecycle transition.
// Events are written in the same transaction as the shipment change they document.
type ShipmentEvent struct {
	ID         int64
	ShipmentID int64
	Status     ShipmentStatusType
	Location   string
	OccurredAt time.Time
}

// ShipmentDraft carries the caller-supplied fields for shipment creation.
// Origin is not here: it is copied from the owning warehouse's address.
type ShipmentDraft struct {
	WarehouseID   int64
	WeightTons    float64
	VolumeM3      float64
	NumBoxes      int
	Destination   string
	Deadline      time.Time
	Splittable    *bool
	Stackable     *bool
	Hazardous     *bool
	TempSensitive *bool
}

type ShipmentModify struct {
	ID              *int64
	AssignedTruckID *int64
	Deadline        *time.Time
	Status          *ShipmentStatusType
}

type ShipmentFilter struct {
	WarehouseID int64
	Status      *ShipmentStatusType
	Destination *string
	FromDate    *time.Time
	ToDate      *time.Time
	Page        int
	Limit       int
}

type ShipmentPage struct {
	Shipments []Shipment
	Page      int
	Limit     int
	Total     int64
}

// BookedNotification is what the notification channel is owed once a truck is
// booked. Delivery is fire-and-forget and outside the booking transaction.
type BookedNotification struct {
	ShipmentID  int64
	TruckID     int64
	WarehouseID int64
	Destination string
	Deadline    time.Time
	BookedAt    time.Time
}
