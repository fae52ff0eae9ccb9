package reschedule_appointment

import (
	"time"

	"github.com/pawline/PGS-BookingService/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID int64            // ID переносимой записи
	UserID        int64            // ID пользователя (владельца записи)
	NewDate       time.Time        // Новая дата записи (без времени)
	NewStartTime  types.TimeString // Новое время начала (например, "14:00")
}

// Response модель ответа с перенесённой записью
type Response struct {
	ID              int64            // ID записи
	UserID          int64            // ID пользователя
	ServiceID       int64            // ID услуги
	PetID           int64            // ID питомца
	AppointmentDate time.Time        // Новая дата записи
	StartTime       types.TimeString // Новое время начала
	EndTime         types.TimeString // Новое время окончания
	DurationMinutes int              // Длительность в минутах (снимок, не пересчитывается)
	Status          string           // Статус записи

	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
