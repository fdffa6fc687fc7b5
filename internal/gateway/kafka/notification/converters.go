package notification

import (
	"time"

	"freight/internal/entities"
)

type bookedMessage struct {
	ShipmentID  int64     `json:"shipment_id"`
	TruckID     int64     `json:"truck_id"`
	WarehouseID int64     `json:"warehouse_id"`
	Destination string    `json:"destination"`
	Deadline    time.Time `json:"deadline"`
	BookedAt    time.Time `json:"booked_at"`
}

func fromDomain(n entities.BookedNotification) bookedMessage {
	return bookedMessage{
		ShipmentID:  n.ShipmentID,
		TruckID:     n.TruckID,
		WarehouseID: n.WarehouseID,
		Destination: n.Destination,
		Deadline:    n.Deadline,
		BookedAt:    n.BookedAt,
	}
}
