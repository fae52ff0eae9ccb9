package domain

import "time"

// Default calendar values
const (
	DefaultOpenHour            = 9
	DefaultCloseHour           = 18
	DefaultSlotIntervalMinutes = 30
	DefaultMinimumLeadMinutes  = 30
	DefaultAdvanceBookingDays  = 0 // 0 = unlimited
)

// DefaultWorkingWeekdays returns Monday through Saturday
func DefaultWorkingWeekdays() []time.Weekday {
	return []time.Weekday{
		time.Monday,
		time.Tuesday,
		time.Wednesday,
		time.Thursday,
		time.Friday,
		time.Saturday,
	}
}

// Business validation constants
const (
	MinSlotIntervalMinutes      = 5
	MaxSlotIntervalMinutes      = 240 // 4 hours
	MinMinimumLeadMinutes       = 0
	MaxMinimumLeadMinutes       = 10080 // 1 week
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих календарь
// Используется при фильтрации бронирований для расчёта доступности
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
}

// ActiveStatuses список статусов активных записей
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
