package shipment_put

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

	var advanceDTO dto.ShipmentAdvance
	err = json.NewDecoder(r.Body).Decode(&advanceDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.AdvanceShipment(r.Context(), shipment.AdvanceRequest{
		ShipmentID: id,
		Advance:    advanceDTO.Advance,
		TruckID:    advanceDTO.TruckID,
		Deadline:   advanceDTO.Deadline,
	})
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidDeadline),
			errors.Is(err, shipment.ErrTruckRequired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound),
			errors.Is(err, shipment.ErrTruckNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrUpdateConflict):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, shipment.ErrShipmentDelivered),
			errors.Is(err, shipment.ErrNoNextStatus),
			errors.Is(err, shipment.ErrTruckNotEligible):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toDTO(updated))
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
