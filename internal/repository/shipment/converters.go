package shipment

import "freight/internal/entities"

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}
	return &entities.Shipment{
		ID:              s.ID,
		WarehouseID:     s.WarehouseID,
		AssignedTruckID: s.AssignedTruckID,
		WeightTons:      s.WeightTons,
		VolumeM3:        s.VolumeM3,
		NumBoxes:        s.NumBoxes,
		Origin:          s.Origin,
		Destination:     s.Destination,
		Deadline:        s.Deadline,
		Splittable:      s.Splittable,
		Stackable:       s.Stackable,
		Hazardous:       s.Hazardous,
		TempSensitive:   s.TempSensitive,
		Status:          entities.ShipmentStatusType(s.Status),
		Version:         s.Version,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func ToEventDomain(e *ShipmentEventDB) *entities.ShipmentEvent {
	if e == nil {
		return nil
	}
	return &entities.ShipmentEvent{
		ID:         e.ID,
		ShipmentID: e.ShipmentID,
		Status:     entities.ShipmentStatusType(e.Status),
		Location:   e.Location,
		OccurredAt: e.OccurredAt,
	}
}
