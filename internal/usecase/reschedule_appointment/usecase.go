package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pawline/PGS-BookingService/internal/domain"
	appointmentRepo "github.com/pawline/PGS-BookingService/internal/infra/storage/appointment"
	calendarRepo "github.com/pawline/PGS-BookingService/internal/infra/storage/calendar"
	"github.com/pawline/PGS-BookingService/internal/scheduling"
	"github.com/pawline/PGS-BookingService/pkg/types"
)

// UseCase use case для переноса записи на другой слот
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendarRepo    CalendarRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	calendarRepo CalendarRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendarRepo:    calendarRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи
// Новый слот проверяется той же сеткой и тем же правилом пересечения, что и
// при создании; занятость проверяется без учёта самой переносимой записи.
// Длительность услуги берётся из снимка записи, а не из каталога
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%d, user=%d, newDate=%s, newTime=%s",
		req.AppointmentID, req.UserID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем запись
	appointment, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 4. Проверяем, что запись принадлежит пользователю
	if appointment.UserID != req.UserID {
		uc.logger.Warn("RescheduleAppointment: user id=%d is not the owner of appointment id=%d",
			req.UserID, req.AppointmentID)
		return nil, ErrAccessDenied
	}

	// 5. Проверяем политику переноса: статус и правило 24 часов
	snapshot, err := scheduling.FromAppointment(appointment)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to build snapshot for id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to build snapshot: %v", ErrInternal, err)
	}

	if !scheduling.CanReschedule(snapshot, now) {
		uc.logger.Warn("RescheduleAppointment: reschedule not allowed for appointment id=%d (status=%s, start=%s)",
			req.AppointmentID, appointment.Status, snapshot.StartTime.Format(time.RFC3339))
		return nil, ErrRescheduleNotAllowed
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем календарь салона
		calendar, err := uc.calendarRepo.Get(txCtx)
		if err != nil {
			if !errors.Is(err, calendarRepo.ErrCalendarNotFound) {
				uc.logger.Error("RescheduleAppointment: failed to get calendar: %v", err)
				return fmt.Errorf("%w: failed to get calendar: %v", ErrInternal, err)
			}
			calendar = domain.DefaultCalendar()
			uc.logger.Info("RescheduleAppointment: salon calendar not configured, using defaults")
		}

		// 6.2. Валидация новой даты
		if err := validateDate(req.NewDate, now, calendar.AdvanceBookingDays); err != nil {
			uc.logger.Warn("RescheduleAppointment: date validation failed: %v", err)
			return err
		}

		// 6.3. Проверяем, что салон работает в этот день недели
		if !calendar.IsWorkingDay(req.NewDate.Weekday()) {
			uc.logger.Warn("RescheduleAppointment: salon is closed on %s", req.NewDate.Format(domain.DateFormat))
			return ErrSalonClosed
		}

		// 6.4. Валидация нового времени (minimumLeadMinutes)
		if err := validateAppointmentTime(req.NewDate, req.NewStartTime, now, calendar.MinimumLeadMinutes); err != nil {
			uc.logger.Warn("RescheduleAppointment: time validation failed: %v", err)
			return err
		}

		// 6.5. Проверяем, что новое время лежит на сетке слотов
		// Используем снимок длительности записи, а не текущую длительность из каталога
		slots, err := scheduling.GenerateSlots(calendar, req.NewDate, appointment.DurationMinutes, now)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to generate slots: %v", err)
			return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		if err := validateSlotOnGrid(req.NewStartTime, slots); err != nil {
			uc.logger.Warn("RescheduleAppointment: slot validation failed: %v", err)
			return err
		}

		// 6.6. Получаем все активные записи на новую дату с блокировкой (FOR UPDATE)
		filter := domain.SalonAppointmentsFilter{
			StartDate:       &req.NewDate,
			EndDate:         &req.NewDate,
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.7. Проверяем доступность нового интервала без учёта переносимой записи
		start, end, err := absoluteInterval(req.NewDate, req.NewStartTime, appointment.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: failed to compute interval: %v", ErrInternal, err)
		}

		available, err := scheduling.IsAvailable(start, end, toSnapshotsExcluding(appointments, req.AppointmentID))
		if err != nil {
			uc.logger.Error("RescheduleAppointment: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		if !available {
			uc.logger.Warn("RescheduleAppointment: slot %s on %s is already taken",
				req.NewStartTime, req.NewDate.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 6.8. Переносим запись
		updated, err := uc.appointmentRepo.Reschedule(txCtx, req.AppointmentID, req.NewDate, req.NewStartTime)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to reschedule appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to reschedule appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: successfully rescheduled appointment id=%d to %s %s",
		result.ID, result.AppointmentDate.Format(domain.DateFormat), result.StartTime)

	endTime, err := result.StartTime.AddMinutes(result.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		ServiceID:       result.ServiceID,
		PetID:           result.PetID,
		AppointmentDate: result.AppointmentDate,
		StartTime:       result.StartTime,
		EndTime:         endTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// absoluteInterval строит абсолютный полуоткрытый интервал [start, end) записи
func absoluteInterval(date time.Time, startTime types.TimeString, durationMinutes int) (time.Time, time.Time, error) {
	startMinutes, err := startTime.Minutes()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start := time.Date(date.Year(), date.Month(), date.Day(),
		startMinutes/60, startMinutes%60, 0, 0, date.Location())

	return start, scheduling.ComputeEnd(start, durationMinutes), nil
}

// toSnapshotsExcluding конвертирует записи в снимки интервалов, пропуская
// переносимую запись: она не должна блокировать свой собственный перенос
func toSnapshotsExcluding(appointments []*domain.Appointment, excludeID int64) []scheduling.ExistingAppointment {
	existing := make([]scheduling.ExistingAppointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt.ID == excludeID {
			continue
		}
		snapshot, err := scheduling.FromAppointment(appt)
		if err != nil {
			continue
		}
		existing = append(existing, snapshot)
	}
	return existing
}
