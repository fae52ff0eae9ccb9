package calendar

import (
	"context"

	"github.com/pawline/PGS-BookingService/internal/domain"
	"github.com/pawline/PGS-BookingService/internal/integrations/catalogservice"
)

// CalendarRepository интерфейс репозитория календаря салона
type CalendarRepository interface {
	Get(ctx context.Context) (*domain.SalonCalendar, error)
	Create(ctx context.Context, calendar *domain.SalonCalendar) (*domain.SalonCalendar, error)
	Update(ctx context.Context, id int64, calendar *domain.SalonCalendar) (*domain.SalonCalendar, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetSalonProfile(ctx context.Context) (*catalogservice.SalonProfile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
