package update_salon_calendar

import (
	"github.com/pawline/PGS-BookingService/internal/service/calendar/models"
)

// UpdateCalendarRequest HTTP request model
type UpdateCalendarRequest struct {
	UserID              int64 `json:"userId"`
	OpenHour            int   `json:"openHour"`
	CloseHour           int   `json:"closeHour"`
	WorkingWeekdays     []int `json:"workingWeekdays"`
	SlotIntervalMinutes int   `json:"slotIntervalMinutes"`
	MinimumLeadMinutes  int   `json:"minimumLeadMinutes"`
	AdvanceBookingDays  int   `json:"advanceBookingDays"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCalendarRequest) ToServiceRequest() *models.UpdateCalendarRequest {
	return &models.UpdateCalendarRequest{
		UserID:              r.UserID,
		OpenHour:            r.OpenHour,
		CloseHour:           r.CloseHour,
		WorkingWeekdays:     r.WorkingWeekdays,
		SlotIntervalMinutes: r.SlotIntervalMinutes,
		MinimumLeadMinutes:  r.MinimumLeadMinutes,
		AdvanceBookingDays:  r.AdvanceBookingDays,
	}
}
