package warehouse

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid warehouse name")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidCapacity       = errors.New("invalid capacity")

	ErrWarehouseNotFound = errors.New("warehouse not found")
)
