package matcher

import "errors"

var (
	ErrInvalidOrigin      = errors.New("invalid origin")
	ErrInvalidDestination = errors.New("invalid destination")
	ErrInvalidWeight      = errors.New("invalid weight")
	ErrInvalidVolume      = errors.New("invalid volume")
)
