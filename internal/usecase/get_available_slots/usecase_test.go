package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawline/PGS-BookingService/internal/domain"
	calendarRepo "github.com/pawline/PGS-BookingService/internal/infra/storage/calendar"
	catalogClient "github.com/pawline/PGS-BookingService/internal/integrations/catalogservice"
	"github.com/pawline/PGS-BookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	gotFilter    *domain.SalonAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	f.gotFilter = &filter
	return f.appointments, f.err
}

type fakeCalendarRepo struct {
	calendar *domain.SalonCalendar
	err      error
}

func (f *fakeCalendarRepo) Get(_ context.Context) (*domain.SalonCalendar, error) {
	return f.calendar, f.err
}

type fakeCatalogClient struct {
	service *catalogClient.Service
	err     error
}

func (f *fakeCatalogClient) GetService(_ context.Context, _ int64) (*catalogClient.Service, error) {
	return f.service, f.err
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testService(duration int) *catalogClient.Service {
	return &catalogClient.Service{
		ID:              1,
		Name:            "Полный груминг",
		DurationMinutes: duration,
		IsActive:        true,
	}
}

func testCalendar() *domain.SalonCalendar {
	return &domain.SalonCalendar{
		ID:        1,
		OpenHour:  9,
		CloseHour: 18,
		WorkingWeekdays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		},
		SlotIntervalMinutes: 30,
		MinimumLeadMinutes:  30,
	}
}

func testAppointment(date time.Time, start types.TimeString, duration int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              42,
		UserID:          7,
		ServiceID:       1,
		AppointmentDate: date,
		StartTime:       start,
		DurationMinutes: duration,
		Status:          status,
	}
}

func newTestUseCase(
	appointmentRepo *fakeAppointmentRepo,
	calRepo *fakeCalendarRepo,
	catalog *fakeCatalogClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(appointmentRepo, calRepo, catalog, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_FullDayNoAppointments(t *testing.T) {
	// Среда 2026-03-04, рабочий день
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})
	require.NoError(t, err)

	// 09:00 .. 17:00 с шагом 30 минут
	require.Len(t, resp.Slots, 17)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("17:00"), resp.Slots[len(resp.Slots)-1].StartTime)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_BookedSlotsExcluded(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	appointmentRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			// Запись 10:00-11:00 блокирует слоты 09:30, 10:00, 10:30
			testAppointment(date, "10:00", 60, domain.StatusConfirmed),
		},
	}

	uc := newTestUseCase(
		appointmentRepo,
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})
	require.NoError(t, err)

	starts := make(map[types.TimeString]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		starts[slot.StartTime] = true
	}

	assert.True(t, starts["09:00"], "слот, заканчивающийся ровно к началу записи, доступен")
	assert.False(t, starts["09:30"])
	assert.False(t, starts["10:00"])
	assert.False(t, starts["10:30"])
	assert.True(t, starts["11:00"], "слот, начинающийся ровно после записи, доступен")

	require.NotNil(t, appointmentRepo.gotFilter)
	assert.False(t, appointmentRepo.gotFilter.IncludeInactive)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{
			appointments: []*domain.Appointment{
				testAppointment(date, "10:00", 60, domain.StatusCancelledByClient),
			},
		},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 17)
}

func TestExecute_DefaultCalendarWhenNotConfigured(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{err: calendarRepo.ErrCalendarNotFound},
		&fakeCatalogClient{service: testService(30)},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	// Воскресенье 2026-03-08
	date := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{err: catalogClient.ErrServiceNotFound},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, Date: date})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_PastDateRejected(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DateTooFarInFuture(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	date := now.AddDate(0, 0, 20)

	calendar := testCalendar()
	calendar.AdvanceBookingDays = 14

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: calendar},
		&fakeCatalogClient{service: testService(60)},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_SameDayLeadTime(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	// 10:45 + 30 минут lead-time: первый доступный слот 11:30
	now := time.Date(2026, 3, 4, 10, 45, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("11:30"), resp.Slots[0].StartTime)
}
