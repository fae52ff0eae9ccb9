package get_salon_appointments

import (
	"errors"
	"net/http"

	"github.com/pawline/PGS-BookingService/internal/api/handlers"
	"github.com/pawline/PGS-BookingService/internal/api/middleware"
	"github.com/pawline/PGS-BookingService/internal/service/appointments"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
	msgForbidden     = "доступ запрещен"
	msgSalonNotFound = "салон не найден"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salon/appointments
// Query params: startDate, endDate (YYYY-MM-DD), status, includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /salon/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	includeInactive := query.Get("includeInactive") == "true"

	// Формируем запрос к сервису (с парсингом дат)
	serviceReq, err := ToServiceRequest(
		userID,
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("status"),
		includeInactive,
	)
	if err != nil {
		h.logger.Warn("GET /salon/appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Получаем записи салона
	result, err := h.service.GetSalonAppointments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /salon/appointments - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrSalonNotFound):
			h.logger.Warn("GET /salon/appointments - Salon not found")
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /salon/appointments - Invalid filter: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /salon/appointments - Failed to get appointments: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salon/appointments - Appointments retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result.Appointments)
}
