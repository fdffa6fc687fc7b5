package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/entities"
	truckService "freight/internal/service/truck"
	warehouseService "freight/internal/service/warehouse"
)

// Service owns the shipment lifecycle: it enforces the status state machine
// and performs every write (shipment row, truck assignment, event append) as
// one atomic transaction.
type Service struct {
	repository Repository
	warehouses WarehouseProvider
	trucks     TruckProvider
	notifier   Notifier
	txManager  TxManager
}

func New(
	repository Repository,
	warehouses WarehouseProvider,
	trucks TruckProvider,
	notifier Notifier,
	txManager TxManager,
) *Service {
	return &Service{
		repository: repository,
		warehouses: warehouses,
		trucks:     trucks,
		notifier:   notifier,
		txManager:  txManager,
	}
}

// AdvanceRequest is a single mutation of a shipment: an optional new deadline
// and an optional advance to the next lifecycle status. Booking (the advance
// into BOOKED) additionally requires TruckID.
type AdvanceRequest struct {
	ShipmentID int64
	Advance    bool
	TruckID    *int64
	Deadline   *time.Time
}

func (s *Service) CreateShipment(ctx context.Context, draft entities.ShipmentDraft) (*entities.Shipment, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	created := &entities.Shipment{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		warehouse, err := s.warehouses.GetWarehouse(ctx, draft.WarehouseID)
		if err != nil {
			if errors.Is(err, warehouseService.ErrWarehouseNotFound) {
				return ErrWarehouseNotFound
			}
			return fmt.Errorf("get warehouse: %w", err)
		}

		shipment := draftToShipment(draft, warehouse.Address)
		created, err = s.repository.Create(ctx, shipment)
		if err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}

		_, err = s.repository.AppendEvent(ctx, entities.ShipmentEvent{
			ShipmentID: created.ID,
			Status:     entities.ShipmentPending,
			Location:   created.Origin,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("append event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) AdvanceShipment(ctx context.Context, request AdvanceRequest) (*entities.Shipment, error) {
	if request.ShipmentID <= 0 {
		return nil, ErrMissingRequiredFields
	}
	if !isValidDeadline(request.Deadline) {
		return nil, ErrInvalidDeadline
	}

	var updated *entities.Shipment
	var notification *entities.BookedNotification

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		notification = nil

		shipment, err := s.repository.GetByID(ctx, request.ShipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if shipment.Status == entities.ShipmentDelivered {
			return ErrShipmentDelivered
		}

		modify := entities.ShipmentModify{
			ID:       &shipment.ID,
			Deadline: request.Deadline,
		}

		var nextStatus entities.ShipmentStatusType
		if request.Advance {
			next, ok := shipment.Status.Next()
			if !ok {
				return ErrNoNextStatus
			}
			nextStatus = next
			modify.Status = &nextStatus

			if nextStatus == entities.ShipmentBooked {
				truckID, err := s.validateBooking(ctx, shipment, request.TruckID)
				if err != nil {
					return err
				}
				modify.AssignedTruckID = &truckID
			}
		}

		updated, err = s.repository.Update(ctx, modify, shipment.Version)
		if err != nil {
			return fmt.Errorf("update shipment: %w", err)
		}

		if request.Advance {
			_, err = s.repository.AppendEvent(ctx, entities.ShipmentEvent{
				ShipmentID: updated.ID,
				Status:     nextStatus,
				Location:   eventLocation(nextStatus, updated.Origin),
				OccurredAt: time.Now().UTC(),
			})
			if err != nil {
				return fmt.Errorf("append event: %w", err)
			}

			if nextStatus == entities.ShipmentBooked && updated.AssignedTruckID != nil {
				notification = &entities.BookedNotification{
					ShipmentID:  updated.ID,
					TruckID:     *updated.AssignedTruckID,
					WarehouseID: updated.WarehouseID,
					Destination: updated.Destination,
					Deadline:    updated.Deadline,
					BookedAt:    time.Now().UTC(),
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Delivery is owed only after the booking committed; the channel is
	// fire-and-forget and must not affect the result.
	if notification != nil {
		s.notifier.ShipmentBooked(ctx, *notification)
	}

	return updated, nil
}

func (s *Service) DeleteShipment(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrMissingRequiredFields
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if shipment.Status == entities.ShipmentInTransit || shipment.Status == entities.ShipmentDelivered {
			return ErrShipmentNotDeletable
		}

		if err := s.repository.DeleteEventsByShipment(ctx, id); err != nil {
			return fmt.Errorf("delete shipment events: %w", err)
		}
		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete shipment: %w", err)
		}
		return nil
	})
}

func (s *Service) GetShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	shipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return shipment, nil
}

func (s *Service) GetShipmentEvents(ctx context.Context, shipmentID int64) ([]entities.ShipmentEvent, error) {
	events, err := s.repository.GetEvents(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment events: %w", err)
	}
	return events, nil
}

func (s *Service) ListShipments(ctx context.Context, filter entities.ShipmentFilter) (*entities.ShipmentPage, error) {
	if filter.WarehouseID <= 0 {
		return nil, ErrMissingRequiredFields
	}
	filter = normalizeFilter(filter)

	shipments, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}

	return &entities.ShipmentPage{
		Shipments: shipments,
		Page:      filter.Page,
		Limit:     filter.Limit,
		Total:     total,
	}, nil
}

func (s *Service) CountShipmentsByStatus(ctx context.Context) (map[entities.ShipmentStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count shipments by status: %w", err)
	}
	return counts, nil
}

// validateBooking re-checks truck eligibility inside the booking transaction:
// a matcher candidate can go stale between ranking and booking.
func (s *Service) validateBooking(ctx context.Context, shipment *entities.Shipment, truckID *int64) (int64, error) {
	if truckID == nil || *truckID <= 0 {
		return 0, ErrTruckRequired
	}

	truck, err := s.trucks.GetTruck(ctx, *truckID)
	if err != nil {
		if errors.Is(err, truckService.ErrTruckNotFound) {
			return 0, ErrTruckNotFound
		}
		return 0, fmt.Errorf("get truck: %w", err)
	}

	if truck.Status != entities.TruckActive {
		return 0, fmt.Errorf("%w: status %s", ErrTruckNotEligible, truck.Status)
	}
	if truck.MaxWeightTons < shipment.WeightTons || truck.MaxVolumeM3 < shipment.VolumeM3 {
		return 0, fmt.Errorf("%w: capacity exceeded", ErrTruckNotEligible)
	}
	if !servesLane(truck.Routes, shipment.Origin, shipment.Destination) {
		return 0, fmt.Errorf("%w: lane not serviced", ErrTruckNotEligible)
	}

	return truck.ID, nil
}

func servesLane(routes []entities.ServiceRoute, origin, destination string) bool {
	for _, route := range routes {
		if route.StartLocation == origin && route.EndLocation == destination {
			return true
		}
	}
	return false
}

func eventLocation(status entities.ShipmentStatusType, origin string) string {
	if status == entities.ShipmentInTransit {
		return entities.LocationOnRoute
	}
	return origin
}

func draftToShipment(draft entities.ShipmentDraft, origin string) entities.Shipment {
	shipment := entities.Shipment{
		WarehouseID:   draft.WarehouseID,
		WeightTons:    draft.WeightTons,
		VolumeM3:      draft.VolumeM3,
		NumBoxes:      draft.NumBoxes,
		Origin:        origin,
		Destination:   draft.Destination,
		Deadline:      draft.Deadline,
		Splittable:    true,
		Stackable:     true,
		Hazardous:     false,
		TempSensitive: false,
		Status:        entities.ShipmentPending,
	}
	if draft.Splittable != nil {
		shipment.Splittable = *draft.Splittable
	}
	if draft.Stackable != nil {
		shipment.Stackable = *draft.Stackable
	}
	if draft.Hazardous != nil {
		shipment.Hazardous = *draft.Hazardous
	}
	if draft.TempSensitive != nil {
		shipment.TempSensitive = *draft.TempSensitive
	}
	return shipment
}
