//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_bestfit_get_test
package shipment_bestfit_get

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
	FindBestFitForShipment(ctx context.Context, shipmentID int64) ([]entities.TruckCandidate, error)
}
