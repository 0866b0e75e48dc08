package moire

import "errors"

// Errors returned by engine construction and input validation.
// They are wrapped with context; test with errors.Is.
var (
	// ErrInvalidSpacing is returned when a layer's lattice spacing is not a
	// finite value of at least lattice.MinSpacing pixels.
	ErrInvalidSpacing = errors.New("moire: invalid lattice spacing")

	// ErrInvalidGeometry is returned for non-positive canvas sizes or radii,
	// or a ring whose inner radius is not inside the outer radius.
	ErrInvalidGeometry = errors.New("moire: invalid geometry")

	// ErrInvalidLayers is returned for an empty or oversized layer list or
	// a non-positive disc diameter.
	ErrInvalidLayers = errors.New("moire: invalid layers")

	// ErrSizeMismatch is returned when buffers of different dimensions are
	// combined, or raw data does not match the declared size.
	ErrSizeMismatch = errors.New("moire: buffer size mismatch")

	// ErrLayerIndex is returned when a layer index is out of range.
	ErrLayerIndex = errors.New("moire: layer index out of range")

	// ErrAngleOutOfRange is returned for NaN or infinite angles, and for
	// angles beyond the limit when strict angle checking is enabled.
	ErrAngleOutOfRange = errors.New("moire: angle out of range")
)
