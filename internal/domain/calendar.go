package domain

import (
	"fmt"
	"time"
)

// SalonCalendar is the booking configuration of the salon.
// A single row for the whole salon, editable from the back office,
// effectively immutable within one availability computation.
type SalonCalendar struct {
	ID                  int64
	OpenHour            int // Opening hour, 24h local time
	CloseHour           int // Closing hour, 24h local time, OpenHour < CloseHour
	WorkingWeekdays     []time.Weekday
	SlotIntervalMinutes int // Granularity at which candidate start times are generated
	MinimumLeadMinutes  int // Minimum gap between "now" and a same-day start time
	AdvanceBookingDays  int // How far ahead a date may be booked, 0 = unlimited
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsWorkingDay returns true if the salon operates on the given weekday
func (c *SalonCalendar) IsWorkingDay(day time.Weekday) bool {
	for _, d := range c.WorkingWeekdays {
		if d == day {
			return true
		}
	}
	return false
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance
// appointments can be made
func (c *SalonCalendar) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// Validate checks the calendar against business bounds.
// A misconfigured calendar is a programmer/admin error and must fail fast,
// never silently produce an empty-but-plausible slot list.
func (c *SalonCalendar) Validate() error {
	if c.OpenHour < 0 || c.OpenHour > 23 {
		return fmt.Errorf("openHour must be within [0,23], got %d", c.OpenHour)
	}
	if c.CloseHour < 1 || c.CloseHour > 24 {
		return fmt.Errorf("closeHour must be within [1,24], got %d", c.CloseHour)
	}
	if c.OpenHour >= c.CloseHour {
		return fmt.Errorf("openHour %d must be before closeHour %d", c.OpenHour, c.CloseHour)
	}
	if c.SlotIntervalMinutes < MinSlotIntervalMinutes || c.SlotIntervalMinutes > MaxSlotIntervalMinutes {
		return fmt.Errorf("slotIntervalMinutes must be within [%d,%d], got %d",
			MinSlotIntervalMinutes, MaxSlotIntervalMinutes, c.SlotIntervalMinutes)
	}
	if c.MinimumLeadMinutes < MinMinimumLeadMinutes || c.MinimumLeadMinutes > MaxMinimumLeadMinutes {
		return fmt.Errorf("minimumLeadMinutes must be within [%d,%d], got %d",
			MinMinimumLeadMinutes, MaxMinimumLeadMinutes, c.MinimumLeadMinutes)
	}
	if c.AdvanceBookingDays < MinAdvanceBookingDays || c.AdvanceBookingDays > MaxAdvanceBookingDays {
		return fmt.Errorf("advanceBookingDays must be within [%d,%d], got %d",
			MinAdvanceBookingDays, MaxAdvanceBookingDays, c.AdvanceBookingDays)
	}
	if len(c.WorkingWeekdays) == 0 {
		return fmt.Errorf("workingWeekdays must not be empty")
	}
	seen := make(map[time.Weekday]bool, len(c.WorkingWeekdays))
	for _, d := range c.WorkingWeekdays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("invalid weekday %d", d)
		}
		if seen[d] {
			return fmt.Errorf("duplicate weekday %s", d)
		}
		seen[d] = true
	}
	return nil
}

// DefaultCalendar returns the calendar used before the back office saves one
func DefaultCalendar() *SalonCalendar {
	return &SalonCalendar{
		OpenHour:            DefaultOpenHour,
		CloseHour:           DefaultCloseHour,
		WorkingWeekdays:     DefaultWorkingWeekdays(),
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
		MinimumLeadMinutes:  DefaultMinimumLeadMinutes,
		AdvanceBookingDays:  DefaultAdvanceBookingDays,
	}
}
