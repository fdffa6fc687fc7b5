//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=warehouses_get_test
package warehouses_get

import (
	"context"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetWarehouses(ctx context.Context, operatorID int64) ([]entities.Warehouse, error)
}
