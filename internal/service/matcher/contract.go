//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matcher_test
package matcher

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	GetCandidates(ctx context.Context, query entities.MatchQuery) ([]entities.TruckCandidate, error)
}

type ShipmentProvider interface {
	GetShipment(ctx context.Context, id int64) (*entities.Shipment, error)
}
