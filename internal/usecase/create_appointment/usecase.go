package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pawline/PGS-BookingService/internal/domain"
	calendarRepo "github.com/pawline/PGS-BookingService/internal/infra/storage/calendar"
	catalogClient "github.com/pawline/PGS-BookingService/internal/integrations/catalogservice"
	petClient "github.com/pawline/PGS-BookingService/internal/integrations/petservice"
	"github.com/pawline/PGS-BookingService/internal/scheduling"
	"github.com/pawline/PGS-BookingService/pkg/types"
)

// UseCase use case для создания записи на груминг
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendarRepo    CalendarRepository
	catalogClient   CatalogServiceClient
	petClient       PetServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	calendarRepo CalendarRepository,
	catalogClient CatalogServiceClient,
	petClient PetServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendarRepo:    calendarRepo,
		catalogClient:   catalogClient,
		petClient:       petClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// предварительная проверка доступности слота и вставка происходят атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, service=%d, date=%s, time=%s",
		req.UserID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу из каталога
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем, что услуга активна
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 5. Получаем выбранного питомца пользователя
	pet, err := uc.petClient.GetSelectedPet(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, petClient.ErrPetNotFound) {
			uc.logger.Warn("CreateAppointment: user id=%d has no selected pet", req.UserID)
			return nil, ErrPetNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get selected pet for user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get selected pet: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем календарь салона
		calendar, err := uc.calendarRepo.Get(txCtx)
		if err != nil {
			if !errors.Is(err, calendarRepo.ErrCalendarNotFound) {
				uc.logger.Error("CreateAppointment: failed to get calendar: %v", err)
				return fmt.Errorf("%w: failed to get calendar: %v", ErrInternal, err)
			}
			// Если календарь не настроен, используем дефолтные значения
			calendar = domain.DefaultCalendar()
			uc.logger.Info("CreateAppointment: salon calendar not configured, using defaults")
		}

		// 6.2. Валидация даты с учетом календаря
		if err := validateDate(req.Date, now, calendar.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
			return err
		}

		// 6.3. Проверяем, что салон работает в этот день недели
		if !calendar.IsWorkingDay(req.Date.Weekday()) {
			uc.logger.Warn("CreateAppointment: salon is closed on %s", req.Date.Format(domain.DateFormat))
			return ErrSalonClosed
		}

		// 6.4. Валидация времени записи (minimumLeadMinutes)
		if err := validateAppointmentTime(req.Date, req.StartTime, now, calendar.MinimumLeadMinutes); err != nil {
			uc.logger.Warn("CreateAppointment: appointment time validation failed: %v", err)
			return err
		}

		// 6.5. Проверяем, что время лежит на сетке слотов
		slots, err := scheduling.GenerateSlots(calendar, req.Date, service.DurationMinutes, now)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to generate slots: %v", err)
			return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		if err := validateSlotOnGrid(req.StartTime, slots); err != nil {
			uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
			return err
		}

		// 6.6. Получаем все активные записи на эту дату с блокировкой (FOR UPDATE)
		filter := domain.SalonAppointmentsFilter{
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Только активные записи
		}

		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.7. Проверяем доступность интервала
		start, end, err := absoluteInterval(req.Date, req.StartTime, service.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: failed to compute interval: %v", ErrInternal, err)
		}

		available, err := scheduling.IsAvailable(start, end, toSnapshots(appointments))
		if err != nil {
			uc.logger.Error("CreateAppointment: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		if !available {
			uc.logger.Warn("CreateAppointment: slot %s on %s is already taken",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 6.8. Создаем запись с денормализацией данных
		appointment := &domain.Appointment{
			UserID:          req.UserID,
			ServiceID:       req.ServiceID,
			PetID:           pet.ID,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes, // Снимок длительности на момент записи
			Status:          domain.StatusConfirmed,
			// Денормализация данных услуги
			ServiceName:  service.Name,
			ServicePrice: getServicePrice(service),
			// Денормализация данных питомца
			PetName:  &pet.Name,
			PetBreed: &pet.Breed,
			PetSize:  &pet.Size,
			// Заметки
			Notes: req.Notes,
		}

		// 6.9. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

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
		PetName:         result.PetName,
		PetBreed:        result.PetBreed,
		PetSize:         result.PetSize,
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

// toSnapshots конвертирует записи в снимки интервалов для движка доступности
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

// getServicePrice извлекает цену из услуги
// Если цена не указана (nil), возвращает 0.0
func getServicePrice(service *catalogClient.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}
