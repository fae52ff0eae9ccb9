package domain

import (
	"time"

	"github.com/pawline/PGS-BookingService/pkg/types"
)

// AppointmentStatus represents the status of a grooming appointment
type AppointmentStatus string

const (
	StatusPending           AppointmentStatus = "pending"
	StatusConfirmed         AppointmentStatus = "confirmed"
	StatusInProgress        AppointmentStatus = "in_progress"
	StatusCompleted         AppointmentStatus = "completed"
	StatusCancelledByClient AppointmentStatus = "cancelled_by_client"
	StatusCancelledBySalon  AppointmentStatus = "cancelled_by_salon"
	StatusNoShow            AppointmentStatus = "no_show"
)

// IsCancelled returns true for cancelled statuses
// Cancelled appointments never occupy the calendar
func (s AppointmentStatus) IsCancelled() bool {
	return s == StatusCancelledByClient || s == StatusCancelledBySalon
}

// IsFinished returns true for statuses that close an appointment for good
func (s AppointmentStatus) IsFinished() bool {
	return s == StatusCompleted || s == StatusNoShow
}

// Appointment represents a grooming appointment in the system
type Appointment struct {
	ID        int64
	UserID    int64
	ServiceID int64
	PetID     int64

	AppointmentDate time.Time
	StartTime       types.TimeString
	// DurationMinutes is a snapshot of the service duration taken at booking
	// time. Catalog changes after booking never affect an existing appointment.
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	PetName      *string
	PetBreed     *string
	PetSize      *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies the calendar
func (a *Appointment) IsActive() bool {
	return !a.Status.IsCancelled() && a.Status != StatusNoShow
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status.IsCancelled()
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeUpdated returns true if the appointment can still be changed
func (a *Appointment) CanBeUpdated() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// SalonAppointmentsFilter filters salon appointments in repository queries
type SalonAppointmentsFilter struct {
	StartDate       *time.Time         // Period start (optional, nil = unbounded)
	EndDate         *time.Time         // Period end (optional, nil = unbounded)
	Status          *AppointmentStatus // Status filter (optional)
	IncludeInactive bool               // Include cancelled and no-show appointments
}
