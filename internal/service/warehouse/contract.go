//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=warehouse_test
package warehouse

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, operatorID int64, draft entities.WarehouseDraft) (*entities.Warehouse, error)
	GetByID(ctx context.Context, id int64) (*entities.Warehouse, error)
	GetByOperator(ctx context.Context, operatorID int64) ([]entities.Warehouse, error)
}
