//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_put_test
package shipment_put

import (
	"context"

	"freight/internal/entities"
	"freight/internal/service/shipment"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AdvanceShipment(ctx context.Context, request shipment.AdvanceRequest) (*entities.Shipment, error)
}
