package truck

import (
	"context"
	"fmt"

	"freight/internal/entities"
)

type Service struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateTrucks registers every draft in its own transaction together with its
// service routes, so one bad draft does not roll back the trucks before it.
func (s *Service) CreateTrucks(ctx context.Context, operatorID int64, drafts []entities.TruckDraft) ([]entities.Truck, error) {
	if operatorID <= 0 || len(drafts) == 0 {
		return nil, ErrMissingRequiredFields
	}

	created := make([]entities.Truck, 0, len(drafts))
	for _, draft := range drafts {
		if err := validateDraft(draft); err != nil {
			return created, err
		}

		var truck *entities.Truck
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			truck, err = s.repository.Create(ctx, operatorID, draft)
			if err != nil {
				return fmt.Errorf("create truck: %w", err)
			}

			if len(draft.Routes) > 0 {
				truck.Routes, err = s.repository.ReplaceRoutes(ctx, truck.ID, draft.Routes)
				if err != nil {
					return fmt.Errorf("create service routes: %w", err)
				}
			}
			return nil
		})
		if err != nil {
			return created, err
		}
		created = append(created, *truck)
	}

	return created, nil
}

func (s *Service) UpdateTruck(ctx context.Context, operatorID int64, truckModify entities.TruckModify) (*entities.Truck, error) {
	if operatorID <= 0 || truckModify.ID == nil || *truckModify.ID <= 0 {
		return nil, ErrMissingRequiredFields
	}
	if truckModify.Status != nil && !isValidStatus(*truckModify.Status) {
		return nil, ErrInvalidStatus
	}
	if (truckModify.MaxWeightTons != nil && *truckModify.MaxWeightTons <= 0) ||
		(truckModify.MaxVolumeM3 != nil && *truckModify.MaxVolumeM3 <= 0) {
		return nil, ErrInvalidCapacity
	}
	if truckModify.Routes != nil {
		if err := validateRoutes(*truckModify.Routes); err != nil {
			return nil, err
		}
	}

	var updated *entities.Truck
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.repository.Update(ctx, operatorID, truckModify)
		if err != nil {
			return fmt.Errorf("update truck: %w", err)
		}

		// Route updates are wholesale: the submitted set replaces whatever
		// the truck serviced before.
		if truckModify.Routes != nil {
			updated.Routes, err = s.repository.ReplaceRoutes(ctx, updated.ID, *truckModify.Routes)
			if err != nil {
				return fmt.Errorf("replace service routes: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteTruck(ctx context.Context, operatorID, truckID int64) error {
	if operatorID <= 0 || truckID <= 0 {
		return ErrMissingRequiredFields
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.DeleteRoutesByTruck(ctx, truckID); err != nil {
			return fmt.Errorf("delete service routes: %w", err)
		}
		if err := s.repository.Delete(ctx, operatorID, truckID); err != nil {
			return fmt.Errorf("delete truck: %w", err)
		}
		return nil
	})
}

func (s *Service) GetTruck(ctx context.Context, id int64) (*entities.Truck, error) {
	truck, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get truck: %w", err)
	}
	return truck, nil
}

func (s *Service) GetTrucks(ctx context.Context, operatorID int64) ([]entities.Truck, error) {
	trucks, err := s.repository.GetByOperator(ctx, operatorID)
	if err != nil {
		return nil, fmt.Errorf("get trucks: %w", err)
	}
	return trucks, nil
}

func validateDraft(draft entities.TruckDraft) error {
	if draft.ModelCode == "" || draft.Manufacturer == "" {
		return ErrMissingRequiredFields
	}
	if !isValidVIN(draft.VIN) {
		return ErrInvalidVIN
	}
	if !isValidModelYear(draft.ModelYear) {
		return ErrInvalidModelYear
	}
	if !isValidPrimaryType(draft.PrimaryType) {
		return ErrInvalidPrimaryType
	}
	if draft.MaxWeightTons <= 0 || draft.MaxVolumeM3 <= 0 {
		return ErrInvalidCapacity
	}
	if draft.Status != nil && !isValidStatus(*draft.Status) {
		return ErrInvalidStatus
	}
	return validateRoutes(draft.Routes)
}
