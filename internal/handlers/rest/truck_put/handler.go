package truck_put

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

	var truckUpdateDTO dto.TruckUpdate
	err := json.NewDecoder(r.Body).Decode(&truckUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	truckModify := entities.TruckModify{
		ID:            &truckUpdateDTO.ID,
		ModelCode:     truckUpdateDTO.ModelCode,
		VIN:           truckUpdateDTO.VIN,
		Manufacturer:  truckUpdateDTO.Manufacturer,
		ModelYear:     truckUpdateDTO.ModelYear,
		MaxWeightTons: truckUpdateDTO.MaxWeightTons,
		MaxVolumeM3:   truckUpdateDTO.MaxVolumeM3,
	}
	if truckUpdateDTO.PrimaryType != nil {
		primaryType := entities.TruckPrimaryType(*truckUpdateDTO.PrimaryType)
		truckModify.PrimaryType = &primaryType
	}
	if truckUpdateDTO.Status != nil {
		status := entities.TruckStatusType(*truckUpdateDTO.Status)
		truckModify.Status = &status
	}
	if truckUpdateDTO.Routes != nil {
		routes := make([]entities.ServiceRoute, len(*truckUpdateDTO.Routes))
		for i, route := range *truckUpdateDTO.Routes {
			routes[i] = entities.ServiceRoute{
				Name:          route.Name,
				StartLocation: route.StartLocation,
				EndLocation:   route.EndLocation,
				DistanceKm:    route.DistanceKm,
			}
		}
		truckModify.Routes = &routes
	}

	updated, err := h.service.UpdateTruck(r.Context(), principal.UserID, truckModify)
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
		case errors.Is(err, truck.ErrTruckNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, truck.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Truck{
		ID:            updated.ID,
		OperatorID:    updated.OperatorID,
		ModelCode:     updated.ModelCode,
		VIN:           updated.VIN,
		Manufacturer:  updated.Manufacturer,
		ModelYear:     updated.ModelYear,
		PrimaryType:   updated.PrimaryType.String(),
		MaxWeightTons: updated.MaxWeightTons,
		MaxVolumeM3:   updated.MaxVolumeM3,
		Status:        updated.Status.String(),
		Routes:        make([]dto.ServiceRoute, len(updated.Routes)),
		CreatedAt:     updated.CreatedAt,
		UpdatedAt:     updated.UpdatedAt,
	}
	for i, route := range updated.Routes {
		response.Routes[i] = dto.ServiceRoute{
			ID:            route.ID,
			Name:          route.Name,
			StartLocation: route.StartLocation,
			EndLocation:   route.EndLocation,
			DistanceKm:    route.DistanceKm,
			SequenceOrder: route.SequenceOrder,
		}
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
