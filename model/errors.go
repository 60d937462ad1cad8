package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive extent.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when a cell index falls outside the grid.
	ErrOutOfBounds = errors.New("cell index out of bounds")
	// ErrMalformedGrid is returned when a serialized grid cannot be parsed.
	ErrMalformedGrid = errors.New("malformed grid")
)

// ErrUnknownPattern is returned when an initializer name is not registered.
var ErrUnknownPattern = errors.New("unknown pattern")
