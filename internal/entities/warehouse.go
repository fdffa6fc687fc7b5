package entities

import "time"

type Warehouse struct {
	ID           int64
	OperatorID   int64
	Name         string
	Address      string
	CapacityTons float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type WarehouseDraft struct {
	Name         string
	Address      string
	CapacityTons float64
}
