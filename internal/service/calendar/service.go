package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawline/PGS-BookingService/internal/domain"
	calendarRepo "github.com/pawline/PGS-BookingService/internal/infra/storage/calendar"
	catalogClient "github.com/pawline/PGS-BookingService/internal/integrations/catalogservice"
	"github.com/pawline/PGS-BookingService/internal/service/calendar/models"
)

// Service сервис для работы с календарём салона
type Service struct {
	calendarRepo  CalendarRepository
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	calendarRepo CalendarRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		calendarRepo:  calendarRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Get получает календарь салона
// Публичный метод - доступен всем
// Если календарь не настроен, возвращает дефолтные значения
func (s *Service) Get(ctx context.Context) (*models.CalendarResponse, error) {
	s.logger.Info("Get: fetching salon calendar")

	calendar, err := s.calendarRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			s.logger.Info("Get: salon calendar not configured, returning defaults")
			return models.FromDomainCalendar(domain.DefaultCalendar()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched calendar id=%d", calendar.ID)
	return models.FromDomainCalendar(calendar), nil
}

// Update обновляет календарь салона целиком
// Доступно только менеджерам салона
// Если календарь ещё не создан, создаёт его
func (s *Service) Update(ctx context.Context, req *models.UpdateCalendarRequest) (*models.CalendarResponse, error) {
	s.logger.Info("Update: updating salon calendar by user=%d", req.UserID)

	// Проверяем права доступа (только менеджер салона)
	if err := s.checkManagerAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	// Валидируем новый календарь
	newCalendar := req.ToDomainCalendar()
	if err := newCalendar.Validate(); err != nil {
		s.logger.Warn("Update: calendar validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Получаем текущий календарь: если его нет, создаём новый
	current, err := s.calendarRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			s.logger.Error("Update: repository error: %v", err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		created, err := s.calendarRepo.Create(ctx, newCalendar)
		if err != nil {
			s.logger.Error("Update: failed to create calendar: %v", err)
			return nil, fmt.Errorf("%w: Update - failed to create calendar: %v", ErrInternal, err)
		}

		s.logger.Info("Update: successfully created calendar id=%d", created.ID)
		return models.FromDomainCalendar(created), nil
	}

	updated, err := s.calendarRepo.Update(ctx, current.ID, newCalendar)
	if err != nil {
		s.logger.Error("Update: failed to update calendar id=%d: %v", current.ID, err)
		return nil, fmt.Errorf("%w: Update - failed to update calendar: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated calendar id=%d", updated.ID)
	return models.FromDomainCalendar(updated), nil
}

// checkManagerAccess проверяет, что пользователь является менеджером салона
func (s *Service) checkManagerAccess(ctx context.Context, userID int64) error {
	salon, err := s.catalogClient.GetSalonProfile(ctx)
	if err != nil {
		if errors.Is(err, catalogClient.ErrSalonNotFound) {
			s.logger.Warn("checkManagerAccess: salon profile not found")
			return ErrSalonNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get salon profile: %v", err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get salon profile: %v", ErrInternal, err)
	}

	if salon.IsManager(userID) {
		s.logger.Info("checkManagerAccess: user=%d is manager of the salon", userID)
		return nil
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of the salon", userID)
	return ErrAccessDenied
}
