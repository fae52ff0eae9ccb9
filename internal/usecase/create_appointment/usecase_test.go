package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawline/PGS-BookingService/internal/domain"
	catalogClient "github.com/pawline/PGS-BookingService/internal/integrations/catalogservice"
	petClient "github.com/pawline/PGS-BookingService/internal/integrations/petservice"
	"github.com/pawline/PGS-BookingService/pkg/ptr"
	"github.com/pawline/PGS-BookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
	nextID       int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	created := *appointment
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, _ domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
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

type fakePetClient struct {
	pet *petClient.Pet
	err error
}

func (f *fakePetClient) GetSelectedPet(_ context.Context, _ int64) (*petClient.Pet, error) {
	return f.pet, f.err
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testService(duration int) *catalogClient.Service {
	return &catalogClient.Service{
		ID:              1,
		Name:            "Стрижка и мытьё",
		DurationMinutes: duration,
		Price:           ptr.Ptr(2500.0),
		IsActive:        true,
	}
}

func testPet() *petClient.Pet {
	return &petClient.Pet{
		ID:         5,
		UserID:     7,
		Name:       "Барсик",
		Species:    "cat",
		Breed:      "Мейн-кун",
		Size:       "L",
		IsSelected: true,
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

type testEnv struct {
	uc              *UseCase
	appointmentRepo *fakeAppointmentRepo
	txManager       *fakeTxManager
}

func newTestEnv(
	appointmentRepo *fakeAppointmentRepo,
	calRepo *fakeCalendarRepo,
	catalog *fakeCatalogClient,
	pets *fakePetClient,
	now time.Time,
) *testEnv {
	txManager := &fakeTxManager{}
	uc := NewUseCase(appointmentRepo, calRepo, catalog, pets, txManager, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return &testEnv{uc: uc, appointmentRepo: appointmentRepo, txManager: txManager}
}

func validRequest() *Request {
	return &Request{
		UserID:    7,
		ServiceID: 1,
		Date:      time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	env := newTestEnv(
		&fakeAppointmentRepo{nextID: 100},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		&fakePetClient{pet: testPet()},
		now,
	)

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Стрижка и мытьё", resp.ServiceName)
	assert.Equal(t, 2500.0, resp.ServicePrice)
	require.NotNil(t, resp.PetName)
	assert.Equal(t, "Барсик", *resp.PetName)

	// Проверка доступности и вставка происходят внутри транзакции
	assert.Equal(t, 1, env.txManager.calls)

	// Длительность снята с услуги на момент записи
	require.NotNil(t, env.appointmentRepo.created)
	assert.Equal(t, 60, env.appointmentRepo.created.DurationMinutes)
	assert.Equal(t, int64(5), env.appointmentRepo.created.PetID)
}

func TestExecute_SlotTaken(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	env := newTestEnv(
		&fakeAppointmentRepo{
			appointments: []*domain.Appointment{
				{
					ID:              1,
					AppointmentDate: date,
					StartTime:       "10:30",
					DurationMinutes: 60,
					Status:          domain.StatusConfirmed,
				},
			},
		},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		&fakePetClient{pet: testPet()},
		now,
	)

	// 10:00-11:00 пересекается с записью 10:30-11:30
	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_TouchingSlotAllowed(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	env := newTestEnv(
		&fakeAppointmentRepo{
			nextID: 101,
			appointments: []*domain.Appointment{
				// Запись 11:00-12:00: новая запись 10:00-11:00 касается границы
				{
					ID:              1,
					AppointmentDate: date,
					StartTime:       "11:00",
					DurationMinutes: 60,
					Status:          domain.StatusConfirmed,
				},
			},
		},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		&fakePetClient{pet: testPet()},
		now,
	)

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	env := newTestEnv(
		&fakeAppointmentRepo{
			nextID: 102,
			appointments: []*domain.Appointment{
				{
					ID:              1,
					AppointmentDate: date,
					StartTime:       "10:00",
					DurationMinutes: 60,
					Status:          domain.StatusCancelledByClient,
				},
			},
		},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		&fakePetClient{pet: testPet()},
		now,
	)

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_SalonClosed(t *testing.T) {
	now := time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)

	env := newTestEnv(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		&fakePetClient{pet: testPet()},
		now,
	)

	req := validRequest()
	// Воскресенье 2026-03-08
	req.Date = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_OffGridTimeRejected(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	env := newTestEnv(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		&fakePetClient{pet: testPet()},
		now,
	)

	req := validRequest()
	req.StartTime = "10:15"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ServiceWouldEndAfterClosing(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	env := newTestEnv(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(120)},
		&fakePetClient{pet: testPet()},
		now,
	)

	req := validRequest()
	// 17:00 + 120 минут = 19:00 > закрытие в 18:00
	req.StartTime = "17:00"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_TooLateToBook(t *testing.T) {
	// Запись на сегодня: 10:00 при текущем времени 09:45 нарушает lead-time 30 минут
	now := time.Date(2026, 3, 4, 9, 45, 0, 0, time.UTC)

	env := newTestEnv(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		&fakePetClient{pet: testPet()},
		now,
	)

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_LeadTimeBoundaryAllowed(t *testing.T) {
	// 09:30 + 30 минут lead-time = ровно 10:00, граница допустима
	now := time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)

	env := newTestEnv(
		&fakeAppointmentRepo{nextID: 103},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		&fakePetClient{pet: testPet()},
		now,
	)

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	env := newTestEnv(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		&fakePetClient{pet: testPet()},
		now,
	)

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	env := newTestEnv(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{err: catalogClient.ErrServiceNotFound},
		&fakePetClient{pet: testPet()},
		now,
	)

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveServiceRejected(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	service := testService(60)
	service.IsActive = false

	env := newTestEnv(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: service},
		&fakePetClient{pet: testPet()},
		now,
	)

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_NoSelectedPet(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	env := newTestEnv(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		&fakePetClient{err: petClient.ErrPetNotFound},
		now,
	)

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	env := newTestEnv(
		&fakeAppointmentRepo{},
		&fakeCalendarRepo{calendar: testCalendar()},
		&fakeCatalogClient{service: testService(60)},
		&fakePetClient{pet: testPet()},
		now,
	)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"нулевой userID", func(req *Request) { req.UserID = 0 }},
		{"нулевой serviceID", func(req *Request) { req.ServiceID = 0 }},
		{"нулевая дата", func(req *Request) { req.Date = time.Time{} }},
		{"пустое время", func(req *Request) { req.StartTime = "" }},
		{"некорректное время", func(req *Request) { req.StartTime = "25:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
