package scheduling

import "errors"

var (
	// ErrInvalidInterval is returned when a candidate interval's end is not
	// after its start
	ErrInvalidInterval = errors.New("scheduling: candidate end must be after start")

	// ErrInvalidCalendar is returned for a misconfigured salon calendar
	// (openHour >= closeHour, non-positive slot interval, negative lead time)
	ErrInvalidCalendar = errors.New("scheduling: invalid salon calendar")

	// ErrInvalidDuration is returned for a non-positive service duration
	ErrInvalidDuration = errors.New("scheduling: service duration must be positive")
)
