package models

import (
	"time"

	"github.com/pawline/PGS-BookingService/internal/domain"
)

// Request модели

// UpdateCalendarRequest запрос на обновление календаря салона
// Календарь обновляется целиком: все поля обязательны
type UpdateCalendarRequest struct {
	UserID              int64 `json:"userId"`
	OpenHour            int   `json:"openHour"`            // Час открытия (0-23)
	CloseHour           int   `json:"closeHour"`           // Час закрытия (1-24)
	WorkingWeekdays     []int `json:"workingWeekdays"`     // Дни недели (0=воскресенье .. 6=суббота)
	SlotIntervalMinutes int   `json:"slotIntervalMinutes"` // Шаг сетки слотов
	MinimumLeadMinutes  int   `json:"minimumLeadMinutes"`  // Минимальное время до записи
	AdvanceBookingDays  int   `json:"advanceBookingDays"`  // 0 = без ограничений
}

// ToDomainCalendar конвертирует request в domain модель
func (r *UpdateCalendarRequest) ToDomainCalendar() *domain.SalonCalendar {
	weekdays := make([]time.Weekday, 0, len(r.WorkingWeekdays))
	for _, day := range r.WorkingWeekdays {
		weekdays = append(weekdays, time.Weekday(day))
	}

	return &domain.SalonCalendar{
		OpenHour:            r.OpenHour,
		CloseHour:           r.CloseHour,
		WorkingWeekdays:     weekdays,
		SlotIntervalMinutes: r.SlotIntervalMinutes,
		MinimumLeadMinutes:  r.MinimumLeadMinutes,
		AdvanceBookingDays:  r.AdvanceBookingDays,
	}
}

// Response модели

// CalendarResponse ответ с календарём салона
type CalendarResponse struct {
	ID                  int64     `json:"id"`
	OpenHour            int       `json:"openHour"`
	CloseHour           int       `json:"closeHour"`
	WorkingWeekdays     []int     `json:"workingWeekdays"`
	SlotIntervalMinutes int       `json:"slotIntervalMinutes"`
	MinimumLeadMinutes  int       `json:"minimumLeadMinutes"`
	AdvanceBookingDays  int       `json:"advanceBookingDays"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainCalendar конвертирует domain модель в DTO
func FromDomainCalendar(c *domain.SalonCalendar) *CalendarResponse {
	if c == nil {
		return nil
	}

	weekdays := make([]int, 0, len(c.WorkingWeekdays))
	for _, day := range c.WorkingWeekdays {
		weekdays = append(weekdays, int(day))
	}

	return &CalendarResponse{
		ID:                  c.ID,
		OpenHour:            c.OpenHour,
		CloseHour:           c.CloseHour,
		WorkingWeekdays:     weekdays,
		SlotIntervalMinutes: c.SlotIntervalMinutes,
		MinimumLeadMinutes:  c.MinimumLeadMinutes,
		AdvanceBookingDays:  c.AdvanceBookingDays,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
