package shipment

import (
	"strings"
	"time"

	"freight/internal/entities"
)

func validateDraft(draft entities.ShipmentDraft) error {
	if draft.WarehouseID <= 0 {
		return ErrMissingRequiredFields
	}
	if draft.WeightTons <= 0 {
		return ErrInvalidWeight
	}
	if draft.VolumeM3 <= 0 {
		return ErrInvalidVolume
	}
	if draft.NumBoxes <= 0 {
		return ErrInvalidNumBoxes
	}
	if strings.TrimSpace(draft.Destination) == "" {
		return ErrInvalidDestination
	}
	if draft.Deadline.IsZero() {
		return ErrInvalidDeadline
	}
	return nil
}

func isValidDeadline(deadline *time.Time) bool {
	return deadline == nil || !deadline.IsZero()
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

func normalizeFilter(filter entities.ShipmentFilter) entities.ShipmentFilter {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
	return filter
}
