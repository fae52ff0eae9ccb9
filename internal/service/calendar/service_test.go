package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawline/PGS-BookingService/internal/domain"
	calendarRepo "github.com/pawline/PGS-BookingService/internal/infra/storage/calendar"
	catalogClient "github.com/pawline/PGS-BookingService/internal/integrations/catalogservice"
	"github.com/pawline/PGS-BookingService/internal/service/calendar/models"
)

type fakeCalendarRepo struct {
	calendar *domain.SalonCalendar
	created  *domain.SalonCalendar
	updated  *domain.SalonCalendar
}

func (f *fakeCalendarRepo) Get(_ context.Context) (*domain.SalonCalendar, error) {
	if f.calendar == nil {
		return nil, calendarRepo.ErrCalendarNotFound
	}
	return f.calendar, nil
}

func (f *fakeCalendarRepo) Create(_ context.Context, cal *domain.SalonCalendar) (*domain.SalonCalendar, error) {
	created := *cal
	created.ID = 1
	f.created = &created
	return &created, nil
}

func (f *fakeCalendarRepo) Update(_ context.Context, id int64, cal *domain.SalonCalendar) (*domain.SalonCalendar, error) {
	updated := *cal
	updated.ID = id
	f.updated = &updated
	return &updated, nil
}

type fakeCatalogClient struct {
	salon *catalogClient.SalonProfile
	err   error
}

func (f *fakeCatalogClient) GetSalonProfile(_ context.Context) (*catalogClient.SalonProfile, error) {
	return f.salon, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const managerID = int64(500)

func testSalon() *catalogClient.SalonProfile {
	return &catalogClient.SalonProfile{
		ID:         1,
		Name:       "Pawline Grooming",
		ManagerIDs: []int64{managerID},
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

func validUpdateRequest() *models.UpdateCalendarRequest {
	return &models.UpdateCalendarRequest{
		UserID:              managerID,
		OpenHour:            10,
		CloseHour:           20,
		WorkingWeekdays:     []int{1, 2, 3, 4, 5},
		SlotIntervalMinutes: 15,
		MinimumLeadMinutes:  60,
		AdvanceBookingDays:  14,
	}
}

func TestGet_Configured(t *testing.T) {
	svc := NewService(&fakeCalendarRepo{calendar: testCalendar()}, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 9, resp.OpenHour)
	assert.Equal(t, 18, resp.CloseHour)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, resp.WorkingWeekdays)
}

func TestGet_NotConfiguredReturnsDefaults(t *testing.T) {
	svc := NewService(&fakeCalendarRepo{}, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultOpenHour, resp.OpenHour)
	assert.Equal(t, domain.DefaultCloseHour, resp.CloseHour)
}

func TestUpdate_Manager(t *testing.T) {
	repo := &fakeCalendarRepo{calendar: testCalendar()}
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	resp, err := svc.Update(context.Background(), validUpdateRequest())
	require.NoError(t, err)

	assert.Equal(t, 10, resp.OpenHour)
	assert.Equal(t, 20, resp.CloseHour)
	assert.Equal(t, 14, resp.AdvanceBookingDays)
	require.NotNil(t, repo.updated)
	assert.Nil(t, repo.created)
}

func TestUpdate_CreatesWhenMissing(t *testing.T) {
	repo := &fakeCalendarRepo{}
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	resp, err := svc.Update(context.Background(), validUpdateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	require.NotNil(t, repo.created)
	assert.Nil(t, repo.updated)
}

func TestUpdate_NotManager(t *testing.T) {
	svc := NewService(&fakeCalendarRepo{calendar: testCalendar()}, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	req := validUpdateRequest()
	req.UserID = 99

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_InvalidCalendarRejected(t *testing.T) {
	svc := NewService(&fakeCalendarRepo{calendar: testCalendar()}, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	req := validUpdateRequest()
	// Закрытие раньше открытия
	req.OpenHour = 20
	req.CloseHour = 10

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
