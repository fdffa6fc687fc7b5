package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var shipmentCreateDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&shipmentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.ShipmentDraft{
		WarehouseID:   shipmentCreateDTO.WarehouseID,
		WeightTons:    shipmentCreateDTO.WeightTons,
		VolumeM3:      shipmentCreateDTO.VolumeM3,
		NumBoxes:      shipmentCreateDTO.NumBoxes,
		Destination:   shipmentCreateDTO.Destination,
		Deadline:      shipmentCreateDTO.Deadline,
		Splittable:    shipmentCreateDTO.Splittable,
		Stackable:     shipmentCreateDTO.Stackable,
		Hazardous:     shipmentCreateDTO.Hazardous,
		TempSensitive: shipmentCreateDTO.TemperatureSensitive,
	}

	created, err := h.service.CreateShipment(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidWeight),
			errors.Is(err, shipment.ErrInvalidVolume),
			errors.Is(err, shipment.ErrInvalidNumBoxes),
			errors.Is(err, shipment.ErrInvalidDestination),
			errors.Is(err, shipment.ErrInvalidDeadline):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrWarehouseNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(toDTO(created))
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
