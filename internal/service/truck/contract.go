//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=truck_test
package truck

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, operatorID int64, truckDraft entities.TruckDraft) (*entities.Truck, error)
	GetByID(ctx context.Context, id int64) (*entities.Truck, error)
	GetByOperator(ctx context.Context, operatorID int64) ([]entities.Truck, error)
	Update(ctx context.Context, operatorID int64, truckModify entities.TruckModify) (*entities.Truck, error)
	Delete(ctx context.Context, operatorID, truckID int64) error

	ReplaceRoutes(ctx context.Context, truckID int64, routes []entities.ServiceRoute) ([]entities.ServiceRoute, error)
	DeleteRoutesByTruck(ctx context.Context, truckID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
