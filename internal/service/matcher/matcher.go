package matcher

import (
	"context"
	"fmt"
	"sort"

	"freight/internal/entities"
)

// Matcher ranks active trucks by best fit for a payload on a given lane.
// It is read-only; callers may run it concurrently and must treat results
// as a snapshot that can go stale before booking.
type Matcher struct {
	repository Repository
	shipments  ShipmentProvider
}

func New(repository Repository, shipments ShipmentProvider) *Matcher {
	return &Matcher{
		repository: repository,
		shipments:  shipments,
	}
}

// FindBestFit returns candidates sorted by utilization score, best first.
// An empty slice is a valid result meaning no suitable truck right now.
func (m *Matcher) FindBestFit(ctx context.Context, query entities.MatchQuery) ([]entities.TruckCandidate, error) {
	if !isValidLocation(query.Origin) {
		return nil, ErrInvalidOrigin
	}
	if !isValidLocation(query.Destination) {
		return nil, ErrInvalidDestination
	}
	if !isPositive(query.WeightTons) {
		return nil, ErrInvalidWeight
	}
	if !isPositive(query.VolumeM3) {
		return nil, ErrInvalidVolume
	}

	candidates, err := m.repository.GetCandidates(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get candidates: %w", err)
	}

	return rankCandidates(candidates), nil
}

// FindBestFitForShipment runs the match against an existing shipment's payload
// and lane.
func (m *Matcher) FindBestFitForShipment(ctx context.Context, shipmentID int64) ([]entities.TruckCandidate, error) {
	shipment, err := m.shipments.GetShipment(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	return m.FindBestFit(ctx, entities.MatchQuery{
		Origin:      shipment.Origin,
		Destination: shipment.Destination,
		WeightTons:  shipment.WeightTons,
		VolumeM3:    shipment.VolumeM3,
	})
}

// rankCandidates collapses duplicate rows for a truck that services the lane
// through more than one route record, keeping the best-scoring route, then
// sorts descending by score with truck id as a stable tie-break.
func rankCandidates(candidates []entities.TruckCandidate) []entities.TruckCandidate {
	best := make(map[int64]entities.TruckCandidate, len(candidates))
	for _, candidate := range candidates {
		current, seen := best[candidate.Truck.ID]
		if !seen || candidate.UtilizationScore > current.UtilizationScore {
			best[candidate.Truck.ID] = candidate
		}
	}

	ranked := make([]entities.TruckCandidate, 0, len(best))
	for _, candidate := range best {
		ranked = append(ranked, candidate)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].UtilizationScore != ranked[j].UtilizationScore {
			return ranked[i].UtilizationScore > ranked[j].UtilizationScore
		}
		return ranked[i].Truck.ID < ranked[j].Truck.ID
	})

	return ranked
}
