package truck

import (
	"strings"

	"freight/internal/entities"
)

func isValidVIN(vin string) bool {
	return strings.TrimSpace(vin) != ""
}

func isValidModelYear(year int) bool {
	return year >= 1950 && year <= 2100
}

func isValidPrimaryType(primaryType entities.TruckPrimaryType) bool {
	switch primaryType {
	case entities.TruckGeneralOpen, entities.TruckGeneralClosed, entities.TruckRefrigerated,
		entities.TruckTanker, entities.TruckBulk, entities.TruckCarCarrier,
		entities.TruckLivestock, entities.TruckLowBed, entities.TruckCombination:
		return true
	default:
		return false
	}
}

func isValidStatus(status entities.TruckStatusType) bool {
	switch status {
	case entities.TruckActive, entities.TruckMaintenance, entities.TruckRetired:
		return true
	default:
		return false
	}
}

func validateRoutes(routes []entities.ServiceRoute) error {
	for _, route := range routes {
		if strings.TrimSpace(route.Name) == "" ||
			strings.TrimSpace(route.StartLocation) == "" ||
			strings.TrimSpace(route.EndLocation) == "" {
			return ErrInvalidRoute
		}
	}
	return nil
}
