package trucks_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/internal/pkg/middlewares/auth"
	"freight/internal/service/truck"
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
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var trucksCreateDTO dto.TrucksCreate
	err := json.NewDecoder(r.Body).Decode(&trucksCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	drafts := make([]entities.TruckDraft, len(trucksCreateDTO.Trucks))
	for i, truckCreateDTO := range trucksCreateDTO.Trucks {
		drafts[i] = toDraft(truckCreateDTO)
	}

	created, err := h.service.CreateTrucks(r.Context(), principal.UserID, drafts)
	if err != nil {
		switch {
		case errors.Is(err, truck.ErrMissingRequiredFields),
			errors.Is(err, truck.ErrInvalidVIN),
			errors.Is(err, truck.ErrInvalidModelYear),
			errors.Is(err, truck.ErrInvalidPrimaryType),
			errors.Is(err, truck.ErrInvalidStatus),
			errors.Is(err, truck.ErrInvalidCapacity),
			errors.Is(err, truck.ErrInvalidRoute):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, truck.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TruckList{
		Trucks: make([]dto.Truck, len(created)),
	}
	for i, truckEntity := range created {
		response.Trucks[i] = toDTO(truckEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDraft(t dto.TruckCreate) entities.TruckDraft {
	draft := entities.TruckDraft{
		ModelCode:     t.ModelCode,
		VIN:           t.VIN,
		Manufacturer:  t.Manufacturer,
		ModelYear:     t.ModelYear,
		PrimaryType:   entities.TruckPrimaryType(t.PrimaryType),
		MaxWeightTons: t.MaxWeightTons,
		MaxVolumeM3:   t.MaxVolumeM3,
		Routes:        make([]entities.ServiceRoute, len(t.Routes)),
	}
	if t.Status != nil {
		status := entities.TruckStatusType(*t.Status)
		draft.Status = &status
	}
	for i, route := range t.Routes {
		draft.Routes[i] = entities.ServiceRoute{
			Name:          route.Name,
			StartLocation: route.StartLocation,
			EndLocation:   route.EndLocation,
			DistanceKm:    route.DistanceKm,
		}
	}
	return draft
}

func toDTO(t entities.Truck) dto.Truck {
	truckDTO := dto.Truck{
		ID:            t.ID,
		OperatorID:    t.OperatorID,
		ModelCode:     t.ModelCode,
		VIN:           t.VIN,
		Manufacturer:  t.Manufacturer,
		ModelYear:     t.ModelYear,
		PrimaryType:   t.PrimaryType.String(),
		MaxWeightTons: t.MaxWeightTons,
		MaxVolumeM3:   t.MaxVolumeM3,
		Status:        t.Status.String(),
		Routes:        make([]dto.ServiceRoute, len(t.Routes)),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	for i, route := range t.Routes {
		truckDTO.Routes[i] = dto.ServiceRoute{
			ID:            route.ID,
			Name:          route.Name,
			StartLocation: route.StartLocation,
			EndLocation:   route.EndLocation,
			DistanceKm:    route.DistanceKm,
			SequenceOrder: route.SequenceOrder,
		}
	}
	return truckDTO
}
