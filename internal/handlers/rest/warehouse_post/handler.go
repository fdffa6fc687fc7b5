package warehouse_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/internal/pkg/middlewares/auth"
	"freight/internal/service/warehouse"
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

	var warehouseCreateDTO dto.WarehouseCreate
	err := json.NewDecoder(r.Body).Decode(&warehouseCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateWarehouse(r.Context(), principal.UserID, entities.WarehouseDraft{
		Name:         warehouseCreateDTO.Name,
		Address:      warehouseCreateDTO.Address,
		CapacityTons: warehouseCreateDTO.CapacityTons,
	})
	if err != nil {
		switch {
		case errors.Is(err, warehouse.ErrMissingRequiredFields),
			errors.Is(err, warehouse.ErrInvalidName),
			errors.Is(err, warehouse.ErrInvalidAddress),
			errors.Is(err, warehouse.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Warehouse{
		ID:           created.ID,
		OperatorID:   created.OperatorID,
		Name:         created.Name,
		Address:      created.Address,
		CapacityTons: created.CapacityTons,
		CreatedAt:    created.CreatedAt,
		UpdatedAt:    created.UpdatedAt,
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
