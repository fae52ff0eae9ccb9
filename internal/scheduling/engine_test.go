package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawline/PGS-BookingService/internal/domain"
	"github.com/pawline/PGS-BookingService/pkg/types"
)

func testCalendar() *domain.SalonCalendar {
	return &domain.SalonCalendar{
		OpenHour:            9,
		CloseHour:           18,
		WorkingWeekdays:     domain.DefaultWorkingWeekdays(), // Mon..Sat
		SlotIntervalMinutes: 30,
		MinimumLeadMinutes:  30,
	}
}

// 2026-03-04 is a Wednesday, 2026-03-08 is a Sunday
var (
	wednesday = time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	sunday    = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
)

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func TestGenerateSlots_FullDay(t *testing.T) {
	// now is the day before: no lead-time filtering applies
	now := at(wednesday.AddDate(0, 0, -1), 12, 0)

	slots, err := GenerateSlots(testCalendar(), wednesday, 60, now)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// 09:00 through 17:00 every 30 minutes: a 60-minute service starting at
	// 17:00 ends exactly at closing and is still valid
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])
	assert.Len(t, slots, 17)
}

func TestGenerateSlots_SameDayLeadTime(t *testing.T) {
	now := at(wednesday, 9, 0)

	slots, err := GenerateSlots(testCalendar(), wednesday, 60, now)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// 09:00 < now+30m, 09:30 == now+30m and the boundary is bookable
	assert.Equal(t, types.TimeString("09:30"), slots[0])
}

func TestGenerateSlots_LeadTimeBoundaryIncluded(t *testing.T) {
	// now+lead lands exactly on a candidate: that candidate must survive
	now := at(wednesday, 10, 30)

	slots, err := GenerateSlots(testCalendar(), wednesday, 30, now)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("11:00"), slots[0])
}

func TestGenerateSlots_ClosedWeekday(t *testing.T) {
	now := at(wednesday, 8, 0)

	slots, err := GenerateSlots(testCalendar(), sunday, 60, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_ServiceTooLongForDay(t *testing.T) {
	now := at(wednesday.AddDate(0, 0, -1), 12, 0)

	// 10 hours into a 9-hour day
	slots, err := GenerateSlots(testCalendar(), wednesday, 600, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_BoundsAndSpacing(t *testing.T) {
	now := at(wednesday.AddDate(0, 0, -1), 12, 0)
	cal := testCalendar()

	for _, duration := range []int{15, 30, 45, 60, 90} {
		slots, err := GenerateSlots(cal, wednesday, duration, now)
		require.NoError(t, err)

		seen := make(map[types.TimeString]bool)
		for i, slot := range slots {
			minutes, err := slot.Minutes()
			require.NoError(t, err)

			assert.GreaterOrEqual(t, minutes, cal.OpenHour*60)
			assert.LessOrEqual(t, minutes+duration, cal.CloseHour*60)

			assert.False(t, seen[slot], "duplicate slot %s", slot)
			seen[slot] = true

			if i > 0 {
				prev, err := slots[i-1].Minutes()
				require.NoError(t, err)
				assert.Equal(t, cal.SlotIntervalMinutes, minutes-prev)
			}
		}
	}
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	now := at(wednesday, 10, 17)

	first, err := GenerateSlots(testCalendar(), wednesday, 45, now)
	require.NoError(t, err)
	second, err := GenerateSlots(testCalendar(), wednesday, 45, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_InvalidInputs(t *testing.T) {
	now := at(wednesday, 8, 0)

	cal := testCalendar()
	cal.OpenHour = 18
	cal.CloseHour = 9
	_, err := GenerateSlots(cal, wednesday, 60, now)
	assert.ErrorIs(t, err, ErrInvalidCalendar)

	cal = testCalendar()
	cal.SlotIntervalMinutes = 0
	_, err = GenerateSlots(cal, wednesday, 60, now)
	assert.ErrorIs(t, err, ErrInvalidCalendar)

	_, err = GenerateSlots(testCalendar(), wednesday, 0, now)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = GenerateSlots(nil, wednesday, 60, now)
	assert.ErrorIs(t, err, ErrInvalidCalendar)
}

func existing(startHour, startMin, endHour, endMin int, status domain.AppointmentStatus) ExistingAppointment {
	return ExistingAppointment{
		StartTime: at(wednesday, startHour, startMin),
		EndTime:   at(wednesday, endHour, endMin),
		Status:    status,
	}
}

func TestIsAvailable_TouchingBoundary(t *testing.T) {
	appts := []ExistingAppointment{existing(10, 0, 11, 0, domain.StatusConfirmed)}

	// [09:30, 10:00) touches [10:00, 11:00): no conflict
	ok, err := IsAvailable(at(wednesday, 9, 30), at(wednesday, 10, 0), appts)
	require.NoError(t, err)
	assert.True(t, ok)

	// one minute of overlap
	ok, err = IsAvailable(at(wednesday, 9, 30), at(wednesday, 10, 1), appts)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAvailable_CancelledNeverConflicts(t *testing.T) {
	appts := []ExistingAppointment{
		existing(10, 0, 11, 0, domain.StatusCancelledByClient),
		existing(10, 0, 11, 0, domain.StatusCancelledBySalon),
	}

	ok, err := IsAvailable(at(wednesday, 10, 0), at(wednesday, 11, 0), appts)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAvailable_OrderIndependent(t *testing.T) {
	a := existing(9, 0, 10, 0, domain.StatusConfirmed)
	b := existing(12, 0, 13, 0, domain.StatusPending)

	okAB, err := IsAvailable(at(wednesday, 10, 30), at(wednesday, 11, 30), []ExistingAppointment{a, b})
	require.NoError(t, err)
	okBA, err := IsAvailable(at(wednesday, 10, 30), at(wednesday, 11, 30), []ExistingAppointment{b, a})
	require.NoError(t, err)

	assert.Equal(t, okAB, okBA)
	assert.True(t, okAB)
}

func TestIsAvailable_ContainedAndSpanning(t *testing.T) {
	appts := []ExistingAppointment{existing(10, 0, 12, 0, domain.StatusInProgress)}

	// candidate inside the existing appointment
	ok, err := IsAvailable(at(wednesday, 10, 30), at(wednesday, 11, 0), appts)
	require.NoError(t, err)
	assert.False(t, ok)

	// candidate spanning the existing appointment
	ok, err = IsAvailable(at(wednesday, 9, 0), at(wednesday, 13, 0), appts)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAvailable_InvalidInterval(t *testing.T) {
	_, err := IsAvailable(at(wednesday, 10, 0), at(wednesday, 10, 0), nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = IsAvailable(at(wednesday, 11, 0), at(wednesday, 10, 0), nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestCanReschedule_NoticeBoundary(t *testing.T) {
	start := at(wednesday, 14, 0)
	appt := ExistingAppointment{StartTime: start, EndTime: start.Add(time.Hour), Status: domain.StatusConfirmed}

	// exactly 24h before: allowed
	assert.True(t, CanReschedule(appt, start.Add(-24*time.Hour)))
	// one second less: refused
	assert.False(t, CanReschedule(appt, start.Add(-24*time.Hour+time.Second)))
	// well in advance
	assert.True(t, CanReschedule(appt, start.Add(-72*time.Hour)))
}

func TestCanReschedule_StatusGate(t *testing.T) {
	start := at(wednesday, 14, 0)
	now := start.Add(-48 * time.Hour)

	for _, status := range []domain.AppointmentStatus{
		domain.StatusCancelledByClient,
		domain.StatusCancelledBySalon,
		domain.StatusCompleted,
		domain.StatusNoShow,
	} {
		appt := ExistingAppointment{StartTime: start, EndTime: start.Add(time.Hour), Status: status}
		assert.False(t, CanReschedule(appt, now), "status %s", status)
	}

	appt := ExistingAppointment{StartTime: start, EndTime: start.Add(time.Hour), Status: domain.StatusPending}
	assert.True(t, CanReschedule(appt, now))
}

func TestComputeEnd(t *testing.T) {
	start := at(wednesday, 17, 0)
	assert.Equal(t, at(wednesday, 18, 0), ComputeEnd(start, 60))

	// crossing midnight is plain date arithmetic
	late := at(wednesday, 23, 30)
	assert.Equal(t, at(wednesday.AddDate(0, 0, 1), 0, 30), ComputeEnd(late, 60))
}

func TestFromAppointment(t *testing.T) {
	appt := &domain.Appointment{
		AppointmentDate: wednesday,
		StartTime:       types.TimeString("10:30"),
		DurationMinutes: 45,
		Status:          domain.StatusConfirmed,
	}

	snapshot, err := FromAppointment(appt)
	require.NoError(t, err)
	assert.Equal(t, at(wednesday, 10, 30), snapshot.StartTime)
	assert.Equal(t, at(wednesday, 11, 15), snapshot.EndTime)
	assert.Equal(t, domain.StatusConfirmed, snapshot.Status)
}
