package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidVolume         = errors.New("invalid volume")
	ErrInvalidNumBoxes       = errors.New("invalid number of boxes")
	ErrInvalidDestination    = errors.New("invalid destination")
	ErrInvalidDeadline       = errors.New("invalid deadline")
	ErrTruckRequired         = errors.New("truck id required to book shipment")

	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrTruckNotFound     = errors.New("truck not found")

	ErrShipmentDelivered    = errors.New("delivered shipment cannot be updated")
	ErrNoNextStatus         = errors.New("invalid status transition")
	ErrTruckNotEligible     = errors.New("truck no longer eligible for shipment")
	ErrShipmentNotDeletable = errors.New("shipment cannot be deleted in its current state")

	// ErrUpdateConflict means a concurrent writer won; the whole operation is
	// safe to retry.
	ErrUpdateConflict = errors.New("shipment was modified concurrently")
)
