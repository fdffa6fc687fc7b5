package shipment_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"freight/internal/entities"
	"freight/internal/generated/dto"
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

	shipmentEntity, err := h.service.GetShipment(r.Context(), id)
	if err != nil {
		if errors.Is(err, shipment.ErrShipmentNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	events, err := h.service.GetShipmentEvents(r.Context(), id)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.ShipmentDetails{
		Shipment: toDTO(shipmentEntity),
		Events:   make([]dto.ShipmentEvent, len(events)),
	}
	for i, event := range events {
		response.Events[i] = dto.ShipmentEvent{
			ID:         event.ID,
			ShipmentID: event.ShipmentID,
			Status:     event.Status.String(),
			Location:   event.Location,
			OccurredAt: event.OccurredAt,
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

func toDTO(s *entities.Shipment) dto.Shipment {
	return dto.Shipment{
		ID:                   s.ID,
		WarehouseID:          s.WarehouseID,
		AssignedTruckID:      s.AssignedTruckID,
		WeightTons:           s.WeightTons,
		VolumeM3:             s.VolumeM3,
		NumBoxes:             s.NumBoxes,
		Origin:               s.Origin,
		Destination:          s.Destination,
		Deadline:             s.Deadline,
		Splittable:           s.Splittable,
		Stackable:            s.Stackable,
		Hazardous:            s.Hazardous,
		TemperatureSensitive: s.TempSensitive,
		Status:               s.Status.String(),
		Version:              s.Version,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
