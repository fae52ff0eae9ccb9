package get_salon_calendar

import (
	"context"

	"github.com/pawline/PGS-BookingService/internal/service/calendar/models"
)

type CalendarService interface {
	Get(ctx context.Context) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
