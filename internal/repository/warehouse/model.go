package warehouse

import "time"

type WarehouseDB struct {
	ID           int64
	OperatorID   int64
	Name         string
	Address      string
	CapacityTons float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
