package segment

import "errors"

// Sentinel errors. Extraction and segmentation never fail; these are only
// returned while parsing kinds and loading configuration.
var (
	// ErrUnknownKind is returned when a kind name is not recognised.
	ErrUnknownKind = errors.New("unknown response kind")

	// ErrInvalidConfig is returned when a marker table configuration is invalid.
	ErrInvalidConfig = errors.New("invalid segment config")
)
