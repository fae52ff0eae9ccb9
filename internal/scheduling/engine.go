// Package scheduling is the salon's availability engine: slot generation,
// conflict detection and the reschedule policy in one place.
//
// Every function here is pure. The current time is always an explicit
// parameter, existing appointments are read-only snapshots supplied by the
// caller, and nothing is reserved or locked. The authoritative overlap check
// happens at insert time inside a serializable transaction; this engine is
// the advisory pre-check every caller shares.
package scheduling

import (
	"fmt"
	"time"

	"github.com/pawline/PGS-BookingService/internal/domain"
	"github.com/pawline/PGS-BookingService/pkg/types"
)

// slotEpsilon absorbs floating-point noise in decimal-hour comparisons at the
// closing boundary. A service ending exactly at closing time is valid.
const slotEpsilon = 0.001

// MinRescheduleNotice is how long before the start an appointment may still
// be moved
const MinRescheduleNotice = 24 * time.Hour

// ExistingAppointment is the snapshot shape the engine consumes: an absolute
// half-open interval [StartTime, EndTime) plus the status deciding whether it
// occupies the calendar
type ExistingAppointment struct {
	StartTime time.Time
	EndTime   time.Time
	Status    domain.AppointmentStatus
}

// FromAppointment builds the engine snapshot from a stored appointment,
// using the duration snapshotted at booking time
func FromAppointment(a *domain.Appointment) (ExistingAppointment, error) {
	startMinutes, err := a.StartTime.Minutes()
	if err != nil {
		return ExistingAppointment{}, err
	}

	d := a.AppointmentDate
	start := time.Date(d.Year(), d.Month(), d.Day(), startMinutes/60, startMinutes%60, 0, 0, d.Location())

	return ExistingAppointment{
		StartTime: start,
		EndTime:   ComputeEnd(start, a.DurationMinutes),
		Status:    a.Status,
	}, nil
}

// GenerateSlots returns the ordered bookable start times for one calendar day
// and one service duration.
//
// Candidates start at the opening hour and step by the calendar's slot
// interval. A candidate survives when the service would finish by closing
// time (equality allowed, within slotEpsilon) and, on the current day, when
// it starts no earlier than now plus the minimum lead time. A non-working
// weekday yields an empty list. The result is strictly increasing with no
// duplicates by construction.
func GenerateSlots(cal *domain.SalonCalendar, date time.Time, durationMinutes int, now time.Time) ([]types.TimeString, error) {
	if err := validateCalendar(cal); err != nil {
		return nil, err
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, durationMinutes)
	}

	slots := make([]types.TimeString, 0)

	if !cal.IsWorkingDay(date.Weekday()) {
		return slots, nil
	}

	// Latest possible start in decimal hours: a service may not start if it
	// would finish after closing
	lastStartHour := float64(cal.CloseHour) - float64(durationMinutes)/60.0

	sameDay := isSameDay(date, now)
	minStart := now.Add(time.Duration(cal.MinimumLeadMinutes) * time.Minute)

	for m := cal.OpenHour * 60; ; m += cal.SlotIntervalMinutes {
		if float64(m)/60.0 > lastStartHour+slotEpsilon {
			break
		}

		if sameDay {
			// Lead-time filter compares absolute timestamps; the boundary
			// now+lead itself is bookable
			candidate := time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, now.Location())
			if candidate.Before(minStart) {
				continue
			}
		}

		slot, err := types.FromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// IsAvailable reports whether the candidate interval [start, end) can be
// booked against the supplied appointments.
//
// Two intervals conflict iff s1 < e2 && e1 > s2: touching boundaries do not
// conflict. Cancelled appointments are filtered out here regardless of what
// the caller fetched. This is an advisory pre-check only; the caller must
// still rely on the insert-time check for the final decision.
func IsAvailable(start, end time.Time, existing []ExistingAppointment) (bool, error) {
	if !end.After(start) {
		return false, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	for _, appt := range existing {
		if appt.Status.IsCancelled() {
			continue
		}
		if appt.StartTime.Before(end) && appt.EndTime.After(start) {
			return false, nil
		}
	}

	return true, nil
}

// CanReschedule reports whether an appointment may be moved at all.
// Cancelled and finished appointments cannot be moved, and neither can one
// starting in less than MinRescheduleNotice. The boundary itself is allowed.
// The new slot must still pass GenerateSlots and IsAvailable before commit.
func CanReschedule(appt ExistingAppointment, now time.Time) bool {
	if appt.Status.IsCancelled() || appt.Status.IsFinished() {
		return false
	}
	return appt.StartTime.Sub(now) >= MinRescheduleNotice
}

// ComputeEnd returns the implied end of a service starting at start.
// Crossing midnight is handled by plain date arithmetic.
func ComputeEnd(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute)
}

func validateCalendar(cal *domain.SalonCalendar) error {
	if cal == nil {
		return fmt.Errorf("%w: calendar is nil", ErrInvalidCalendar)
	}
	if cal.OpenHour < 0 || cal.CloseHour > 24 || cal.OpenHour >= cal.CloseHour {
		return fmt.Errorf("%w: open=%d close=%d", ErrInvalidCalendar, cal.OpenHour, cal.CloseHour)
	}
	if cal.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("%w: slotIntervalMinutes=%d", ErrInvalidCalendar, cal.SlotIntervalMinutes)
	}
	if cal.MinimumLeadMinutes < 0 {
		return fmt.Errorf("%w: minimumLeadMinutes=%d", ErrInvalidCalendar, cal.MinimumLeadMinutes)
	}
	return nil
}

func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
