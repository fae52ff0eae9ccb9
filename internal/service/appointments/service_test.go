package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawline/PGS-BookingService/internal/domain"
	appointmentRepo "github.com/pawline/PGS-BookingService/internal/infra/storage/appointment"
	catalogClient "github.com/pawline/PGS-BookingService/internal/integrations/catalogservice"
	"github.com/pawline/PGS-BookingService/internal/service/appointments/models"
)

type fakeAppointmentRepo struct {
	byID          map[int64]*domain.Appointment
	cancelled     map[int64]domain.AppointmentStatus
	statusUpdates map[int64]domain.AppointmentStatus
}

func newFakeRepo(appointments ...*domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{
		byID:          make(map[int64]*domain.Appointment),
		cancelled:     make(map[int64]domain.AppointmentStatus),
		statusUpdates: make(map[int64]domain.AppointmentStatus),
	}
	for _, appt := range appointments {
		repo.byID[appt.ID] = appt
	}
	return repo
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) GetByUserID(_ context.Context, userID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.byID {
		if appt.UserID != userID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.byID {
		if !filter.IncludeInactive && !appt.IsActive() {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := f.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64, status domain.AppointmentStatus, _ string) error {
	if _, ok := f.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.cancelled[id] = status
	return nil
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

const (
	ownerID   = int64(7)
	managerID = int64(500)
	strangerID = int64(99)
)

func testSalon() *catalogClient.SalonProfile {
	return &catalogClient.SalonProfile{
		ID:         1,
		Name:       "Pawline Grooming",
		ManagerIDs: []int64{managerID},
	}
}

func testAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		UserID:          ownerID,
		ServiceID:       1,
		PetID:           5,
		AppointmentDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          status,
		ServiceName:     "Полный груминг",
		ServicePrice:    2500.0,
	}
}

func TestGetByID_Owner(t *testing.T) {
	repo := newFakeRepo(testAppointment(42, domain.StatusConfirmed))
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 42, ownerID)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
}

func TestGetByID_Manager(t *testing.T) {
	repo := newFakeRepo(testAppointment(42, domain.StatusConfirmed))
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42, managerID)
	assert.NoError(t, err)
}

func TestGetByID_Stranger(t *testing.T) {
	repo := newFakeRepo(testAppointment(42, domain.StatusConfirmed))
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42, strangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42, ownerID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetUserAppointments_FilterByStatus(t *testing.T) {
	repo := newFakeRepo(
		testAppointment(1, domain.StatusConfirmed),
		testAppointment(2, domain.StatusCompleted),
	)
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	status := string(domain.StatusCompleted)
	resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: ownerID,
		Status: &status,
	})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(2), resp.Appointments[0].ID)
}

func TestGetUserAppointments_InvalidStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	status := "unknown"
	_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: ownerID,
		Status: &status,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetSalonAppointments_ManagerOnly(t *testing.T) {
	repo := newFakeRepo(testAppointment(1, domain.StatusConfirmed))
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	resp, err := svc.GetSalonAppointments(context.Background(), &models.GetSalonAppointmentsRequest{
		UserID: managerID,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	_, err = svc.GetSalonAppointments(context.Background(), &models.GetSalonAppointmentsRequest{
		UserID: strangerID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_ByOwner(t *testing.T) {
	repo := newFakeRepo(testAppointment(42, domain.StatusConfirmed))
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{
		UserID:             ownerID,
		CancellationReason: "не успеваю",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByClient, repo.cancelled[42])
}

func TestCancel_ByManager(t *testing.T) {
	repo := newFakeRepo(testAppointment(42, domain.StatusConfirmed))
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{
		UserID:             managerID,
		CancellationReason: "мастер заболел",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledBySalon, repo.cancelled[42])
}

func TestCancel_ByStranger(t *testing.T) {
	repo := newFakeRepo(testAppointment(42, domain.StatusConfirmed))
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{
		UserID: strangerID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_AlreadyCompleted(t *testing.T) {
	repo := newFakeRepo(testAppointment(42, domain.StatusCompleted))
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{
		UserID: ownerID,
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_Manager(t *testing.T) {
	repo := newFakeRepo(testAppointment(42, domain.StatusConfirmed))
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: managerID,
		Status: string(domain.StatusInProgress),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, repo.statusUpdates[42])
}

func TestUpdateStatus_NotManager(t *testing.T) {
	repo := newFakeRepo(testAppointment(42, domain.StatusConfirmed))
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: ownerID,
		Status: string(domain.StatusInProgress),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := newFakeRepo(testAppointment(42, domain.StatusConfirmed))
	svc := NewService(repo, &fakeCatalogClient{salon: testSalon()}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: managerID,
		Status: "broken",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
