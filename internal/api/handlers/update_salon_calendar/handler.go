package update_salon_calendar

import (
	"errors"
	"net/http"

	"github.com/pawline/PGS-BookingService/internal/api/handlers"
	calendarService "github.com/pawline/PGS-BookingService/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCalendar    = "некорректные параметры календаря"
	msgForbidden          = "доступ запрещен"
	msgSalonNotFound      = "салон не найден"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/salon/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salon/calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем календарь (сервис сам проверит права доступа)
	result, err := h.service.Update(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrAccessDenied):
			h.logger.Warn("PUT /salon/calendar - Access denied: user_id=%d", req.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, calendarService.ErrSalonNotFound):
			h.logger.Warn("PUT /salon/calendar - Salon not found")
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, calendarService.ErrInvalidInput):
			h.logger.Warn("PUT /salon/calendar - Invalid calendar: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidCalendar)

		default:
			h.logger.Error("PUT /salon/calendar - Failed to update calendar: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salon/calendar - Calendar updated successfully: user_id=%d", req.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
