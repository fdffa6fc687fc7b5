package warehouse

import "freight/internal/entities"

func ToDomain(w *WarehouseDB) *entities.Warehouse {
	if w == nil {
		return nil
	}
	return &entities.Warehouse{
		ID:           w.ID,
		OperatorID:   w.OperatorID,
		Name:         w.Name,
		Address:      w.Address,
		CapacityTons: w.CapacityTons,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}
