package lineup

import "errors"

var (
	// ErrInvalidTeamSize is returned for team sizes other than 6 or 7.
	ErrInvalidTeamSize = errors.New("lineup: team size must be 6 or 7")
	// ErrUnknownFormation is returned when a named formation does not exist for a size.
	ErrUnknownFormation = errors.New("lineup: unknown formation")
	// ErrUnknownPosition is returned for position labels outside the role set.
	ErrUnknownPosition = errors.New("lineup: unknown position")
	// ErrInvalidPadding is returned for edge paddings outside [0, 50).
	ErrInvalidPadding = errors.New("lineup: edge padding must be in [0, 50)")
	// ErrSameColors is returned when both teams wear the same colour.
	ErrSameColors = errors.New("lineup: teams must wear different colours")
	// ErrUnknownColor is returned for colour names outside the palette.
	ErrUnknownColor = errors.New("lineup: unknown team colour")
	// ErrInvalidSnapshot is returned when restoring malformed match state.
	ErrInvalidSnapshot = errors.New("lineup: invalid snapshot")
)
