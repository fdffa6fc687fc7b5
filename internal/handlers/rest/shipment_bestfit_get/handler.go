package shipment_bestfit_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/internal/service/matcher"
	"freight/internal/service/shipment"
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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	candidates, err := h.service.FindBestFitForShipment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
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
