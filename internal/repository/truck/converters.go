package truck

import "freight/internal/entities"

func ToDomain(t *TruckDB) *entities.Truck {
	if t == nil {
		return nil
	}
	return &entities.Truck{
		ID:            t.ID,
		OperatorID:    t.OperatorID,
		ModelCode:     t.ModelCode,
		VIN:           t.VIN,
		Manufacturer:  t.Manufacturer,
		ModelYear:     t.ModelYear,
		PrimaryType:   entities.TruckPrimaryType(t.PrimaryType),
		MaxWeightTons: t.MaxWeightTons,
		MaxVolumeM3:   t.MaxVolumeM3,
		Status:        entities.TruckStatusType(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func ToRouteDomain(r *RouteDB) entities.ServiceRoute {
	return entities.ServiceRoute{
		ID:            r.ID,
		Name:          r.Name,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		DistanceKm:    r.DistanceKm,
		SequenceOrder: r.SequenceOrder,
	}
}

// ToCandidateDomain scores a truck/route pair against the requested payload:
// the binding resource (weight or volume fill ratio) determines the score.
func ToCandidateDomain(c *CandidateDB, query entities.MatchQuery) entities.TruckCandidate {
	truck := ToDomain(&c.Truck)
	utilizationWeight := query.WeightTons / c.Truck.MaxWeightTons
	utilizationVolume := query.VolumeM3 / c.Truck.MaxVolumeM3

	score := utilizationWeight
	if utilizationVolume > score {
		score = utilizationVolume
	}

	return entities.TruckCandidate{
		Truck:             *truck,
		Route:             ToRouteDomain(&c.Route),
		UtilizationWeight: utilizationWeight,
		UtilizationVolume: utilizationVolume,
		UtilizationScore:  score,
	}
}
