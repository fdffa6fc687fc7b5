package truck

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidVIN            = errors.New("invalid vin")
	ErrInvalidModelYear      = errors.New("invalid model year")
	ErrInvalidPrimaryType    = errors.New("invalid primary type")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidCapacity       = errors.New("invalid capacity")
	ErrInvalidRoute          = errors.New("invalid service route")

	ErrTruckNotFound = errors.New("truck not found")
	ErrConflict      = errors.New("truck already exists")
)
