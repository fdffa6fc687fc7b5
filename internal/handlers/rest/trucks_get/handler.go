package trucks_get

import (
	"encoding/json"
	"net/http"

	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/internal/pkg/middlewares/auth"
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

	trucks, err := h.service.GetTrucks(r.Context(), principal.UserID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.TruckList{
		Trucks: make([]dto.Truck, len(trucks)),
	}
	for i, truckEntity := range trucks {
		response.Trucks[i] = toDTO(truckEntity)
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
