//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipment entities.Shipment) (*entities.Shipment, error)
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	List(ctx context.Context, filter entities.ShipmentFilter) ([]entities.Shipment, int64, error)

	// Update applies the modify against the given version and bumps it.
	// A live row with a different version yields ErrUpdateConflict.
	Update(ctx context.Context, shipmentModify entities.ShipmentModify, version int64) (*entities.Shipment, error)
	Delete(ctx context.Context, id int64) error

	AppendEvent(ctx context.Context, event entities.ShipmentEvent) (*entities.ShipmentEvent, error)
	GetEvents(ctx context.Context, shipmentID int64) ([]entities.ShipmentEvent, error)
	DeleteEventsByShipment(ctx context.Context, shipmentID int64) error

	CountByStatus(ctx context.Context) (map[entities.ShipmentStatusType]int64, error)
}

type WarehouseProvider interface {
	GetWarehouse(ctx context.Context, id int64) (*entities.Warehouse, error)
}

// TruckProvider loads a truck with its service routes so the booking step can
// revalidate eligibility inside the booking transaction.
type TruckProvider interface {
	GetTruck(ctx context.Context, id int64) (*entities.Truck, error)
}

type Notifier interface {
	ShipmentBooked(ctx context.Context, notification entities.BookedNotification)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
