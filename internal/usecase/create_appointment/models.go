package create_appointment

import (
	"time"

	"github.com/pawline/PGS-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    int64            // ID пользователя
	ServiceID int64            // ID услуги груминга
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	UserID          int64            // ID пользователя
	ServiceID       int64            // ID услуги
	PetID           int64            // ID питомца
	AppointmentDate time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания (start + duration)
	DurationMinutes int              // Длительность в минутах (снимок из каталога)
	Status          string           // Статус записи

	// Денормализованные данные
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	PetName      *string // Кличка питомца
	PetBreed     *string // Порода
	PetSize      *string // Размер (S, M, L, XL)
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
