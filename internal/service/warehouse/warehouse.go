package warehouse

import (
	"context"
	"fmt"
	"strings"

	"freight/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) CreateWarehouse(ctx context.Context, operatorID int64, draft entities.WarehouseDraft) (*entities.Warehouse, error) {
	if operatorID <= 0 {
		return nil, ErrMissingRequiredFields
	}
	if !isValidName(draft.Name) {
		return nil, ErrInvalidName
	}
	if !isValidAddress(draft.Address) {
		return nil, ErrInvalidAddress
	}
	if draft.CapacityTons <= 0 {
		return nil, ErrInvalidCapacity
	}

	warehouse, err := s.repository.Create(ctx, operatorID, draft)
	if err != nil {
		return nil, fmt.Errorf("create warehouse: %w", err)
	}
	return warehouse, nil
}

func (s *Service) GetWarehouse(ctx context.Context, id int64) (*entities.Warehouse, error) {
	warehouse, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return warehouse, nil
}

func (s *Service) GetWarehouses(ctx context.Context, operatorID int64) ([]entities.Warehouse, error) {
	warehouses, err := s.repository.GetByOperator(ctx, operatorID)
	if err != nil {
		return nil, fmt.Errorf("get warehouses: %w", err)
	}
	return warehouses, nil
}

func isValidName(name string) bool {
	name = strings.TrimSpace(name)
	return len(name) >= 3 && len(name) <= 16
}

func isValidAddress(address string) bool {
	return len(strings.TrimSpace(address)) >= 3
}
