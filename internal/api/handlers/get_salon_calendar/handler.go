package get_salon_calendar

import (
	"net/http"

	"github.com/pawline/PGS-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/salon/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	calendar, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /salon/calendar - Failed to get calendar: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salon/calendar - Calendar retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, calendar)
}
