package domain

import "github.com/pawline/PGS-BookingService/pkg/types"

// AvailableSlot represents a start time open for booking
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// EndTime returns the implied end of the slot
func (s *AvailableSlot) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
