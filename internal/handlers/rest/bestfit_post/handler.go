package bestfit_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/internal/service/matcher"
	"freight/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var requestDTO dto.BestFitRequest
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	query, err := toQuery(requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	candidates, err := h.service.FindBestFit(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, matcher.ErrInvalidOrigin),
			errors.Is(err, matcher.ErrInvalidDestination),
			errors.Is(err, matcher.ErrInvalidWeight),
			errors.Is(err, matcher.ErrInvalidVolume):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toResponse(candidates))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

var errAmbiguousPayload = errors.New("payload must be total or per-box, not both")

// toQuery accepts either the total payload or the per-box form multiplied out.
func toQuery(requestDTO dto.BestFitRequest) (entities.MatchQuery, error) {
	query := entities.MatchQuery{
		Origin:      requestDTO.Origin,
		Destination: requestDTO.Destination,
	}

	totalForm := requestDTO.WeightTons != nil || requestDTO.VolumeM3 != nil
	perBoxForm := requestDTO.BoxWeightTons != nil || requestDTO.BoxVolumeM3 != nil || requestDTO.NumBoxes != nil
	if totalForm == perBoxForm {
		return entities.MatchQuery{}, errAmbiguousPayload
	}

	if totalForm {
		if requestDTO.WeightTons != nil {
			query.WeightTons = *requestDTO.WeightTons
		}
		if requestDTO.VolumeM3 != nil {
			query.VolumeM3 = *requestDTO.VolumeM3
		}
		return query, nil
	}

	if requestDTO.BoxWeightTons == nil || requestDTO.BoxVolumeM3 == nil ||
		requestDTO.NumBoxes == nil || *requestDTO.NumBoxes <= 0 {
		return entities.MatchQuery{}, errAmbiguousPayload
	}
	query.WeightTons = *requestDTO.BoxWeightTons * float64(*requestDTO.NumBoxes)
	query.VolumeM3 = *requestDTO.BoxVolumeM3 * float64(*requestDTO.NumBoxes)
	return query, nil
}

func toResponse(candidates []entities.TruckCandidate) dto.BestFitResponse {
	response := dto.BestFitResponse{
		Candidates: make([]dto.TruckCandidate, len(candidates)),
	}
	for i, candidate := range candidates {
		response.Candidates[i] = toCandidateDTO(candidate)
	}
	// Candidates arrive ranked, so the head is the best truck.
	if len(response.Candidates) > 0 {
		response.BestTruck = &response.Candidates[0]
	}
	return response
}

func toCandidateDTO(c entities.TruckCandidate) dto.TruckCandidate {
	return dto.TruckCandidate{
		Truck: dto.Truck{
			ID:            c.Truck.ID,
			OperatorID:    c.Truck.OperatorID,
			ModelCode:     c.Truck.ModelCode,
			VIN:           c.Truck.VIN,
			Manufacturer:  c.Truck.Manufacturer,
			ModelYear:     c.Truck.ModelYear,
			PrimaryType:   c.Truck.PrimaryType.String(),
			MaxWeightTons: c.Truck.MaxWeightTons,
			MaxVolumeM3:   c.Truck.MaxVolumeM3,
			Status:        c.Truck.Status.String(),
			Routes:        []dto.ServiceRoute{},
			CreatedAt:     c.Truck.CreatedAt,
			UpdatedAt:     c.Truck.UpdatedAt,
		},
		Route: dto.ServiceRoute{
			ID:            c.Route.ID,
			Name:          c.Route.Name,
			StartLocation: c.Route.StartLocation,
			EndLocation:   c.Route.EndLocation,
			DistanceKm:    c.Route.DistanceKm,
			SequenceOrder: c.Route.SequenceOrder,
		},
		UtilizationWeight: c.UtilizationWeight,
		UtilizationVolume: c.UtilizationVolume,
		UtilizationScore:  c.UtilizationScore,
	}
}
