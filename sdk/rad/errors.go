package rad

import "errors"

var (
	// ErrUnsupportedFeature is returned before any network call when an
	// operation needs a capability the connected platform lacks. Callers
	// can retry with a reduced feature set or wait for an upgrade.
	ErrUnsupportedFeature = errors.New("feature not supported by connected platform")

	// ErrInvalidArgument is returned for malformed input. Local
	// validation, never reaches the transport.
	ErrInvalidArgument = errors.New("invalid argument")
)
