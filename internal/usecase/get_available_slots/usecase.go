package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pawline/PGS-BookingService/internal/domain"
	calendarRepo "github.com/pawline/PGS-BookingService/internal/infra/storage/calendar"
	catalogClient "github.com/pawline/PGS-BookingService/internal/integrations/catalogservice"
	"github.com/pawline/PGS-BookingService/internal/scheduling"
)

// UseCase use case для получения доступных слотов для записи
// Единственный источник расчёта доступности: все вызывающие (виджет записи,
// перенос, ассистент) получают слоты отсюда
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendarRepo    CalendarRepository
	catalogClient   CatalogServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	calendarRepo CalendarRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendarRepo:    calendarRepo,
		catalogClient:   catalogClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу из каталога
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Получаем календарь салона
	calendar, err := uc.getCalendar(ctx)
	if err != nil {
		return nil, err
	}

	// 5. Валидация даты с учетом календаря
	if err := validateDate(req.Date, now, calendar.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 6. Генерируем временные слоты (нерабочий день даст пустой список)
	timeSlots, err := scheduling.GenerateSlots(calendar, req.Date, service.DurationMinutes, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 7. Получаем все активные записи на эту дату
	filter := domain.SalonAppointmentsFilter{
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные записи
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	existing := toSnapshots(appointments)

	// 8. Отбрасываем слоты, пересекающиеся с существующими записями
	slots := make([]domain.AvailableSlot, 0, len(timeSlots))
	for _, slotStart := range timeSlots {
		startMinutes, err := slotStart.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: invalid slot time %s: %v", ErrInternal, slotStart, err)
		}

		start := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(),
			startMinutes/60, startMinutes%60, 0, 0, req.Date.Location())
		end := scheduling.ComputeEnd(start, service.DurationMinutes)

		available, err := scheduling.IsAvailable(start, end, existing)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: availability check failed: %v", err)
			return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		if available {
			slots = append(slots, domain.AvailableSlot{
				StartTime:       slotStart,
				DurationMinutes: service.DurationMinutes,
			})
		}
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for service=%d, date=%s",
		len(slots), len(timeSlots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

// getCalendar получает календарь салона, при отсутствии использует дефолтный
func (uc *UseCase) getCalendar(ctx context.Context) (*domain.SalonCalendar, error) {
	calendar, err := uc.calendarRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			uc.logger.Info("GetAvailableSlots: salon calendar not configured, using defaults")
			return domain.DefaultCalendar(), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get calendar: %v", err)
		return nil, fmt.Errorf("%w: failed to get calendar: %v", ErrInternal, err)
	}
	return calendar, nil
}

// toSnapshots конвертирует записи в снимки интервалов для движка доступности
// Записи с некорректным временем пропускаются
func toSnapshots(appointments []*domain.Appointment) []scheduling.ExistingAppointment {
	existing := make([]scheduling.ExistingAppointment, 0, len(appointments))
	for _, appt := range appointments {
		snapshot, err := scheduling.FromAppointment(appt)
		if err != nil {
			continue
		}
		existing = append(existing, snapshot)
	}
	return existing
}
