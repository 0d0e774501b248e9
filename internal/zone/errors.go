package zone

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidZoneGeometry: polygon with fewer than 3 points, negative sizes, ...
	ErrInvalidZoneGeometry = errors.New("invalid zone geometry")
	// ErrUnknownZoneType: zone record with an unrecognized type
	ErrUnknownZoneType = errors.New("unknown zone type")
	// ErrMissingZoneID: zone record without an id
	ErrMissingZoneID = errors.New("zone id missing")
)

// RenderError: one zone of a batch that could not be displayed
type RenderError struct {
	ZoneID string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("zone %q could not be displayed: %v", e.ZoneID, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
