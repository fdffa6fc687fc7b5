package warehouses_get

import (
	"encoding/json"
	"net/http"

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

	warehouses, err := h.service.GetWarehouses(r.Context(), principal.UserID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.WarehouseList{
		Warehouses: make([]dto.Warehouse, len(warehouses)),
	}
	for i, warehouseEntity := range warehouses {
		response.Warehouses[i] = dto.Warehouse{
			ID:           warehouseEntity.ID,
			OperatorID:   warehouseEntity.OperatorID,
			Name:         warehouseEntity.Name,
			Address:      warehouseEntity.Address,
			CapacityTons: warehouseEntity.CapacityTons,
			CreatedAt:    warehouseEntity.CreatedAt,
			UpdatedAt:    warehouseEntity.UpdatedAt,
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
