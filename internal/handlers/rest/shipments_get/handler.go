package shipments_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

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
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, err := h.service.ListShipments(r.Context(), filter)
	if err != nil {
		if errors.Is(err, shipment.ErrMissingRequiredFields) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.ShipmentList{
		Shipments: make([]dto.Shipment, len(page.Shipments)),
		Page:      page.Page,
		Limit:     page.Limit,
		Total:     page.Total,
	}
	for i, s := range page.Shipments {
		response.Shipments[i] = dto.Shipment{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

var errBadQuery = errors.New("bad query parameter")

func parseFilter(r *http.Request) (entities.ShipmentFilter, error) {
	query := r.URL.Query()

	warehouseID, err := strconv.ParseInt(query.Get("warehouseId"), 10, 64)
	if err != nil {
		return entities.ShipmentFilter{}, errBadQuery
	}

	filter := entities.ShipmentFilter{WarehouseID: warehouseID}

	if raw := query.Get("status"); raw != "" {
		if !entities.IsValidShipmentStatus(raw) {
			return entities.ShipmentFilter{}, errBadQuery
		}
		status := entities.ShipmentStatusType(raw)
		filter.Status = &status
	}
	if raw := query.Get("destination"); raw != "" {
		filter.Destination = &raw
	}
	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entities.ShipmentFilter{}, errBadQuery
		}
		filter.FromDate = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entities.ShipmentFilter{}, errBadQuery
		}
		filter.ToDate = &to
	}
	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return entities.ShipmentFilter{}, errBadQuery
		}
		filter.Page = page
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return entities.ShipmentFilter{}, errBadQuery
		}
		filter.Limit = limit
	}

	return filter, nil
}
