package get_available_slots

import (
	"time"

	"github.com/pawline/PGS-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги груминга
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time              // Дата, на которую запрашивались слоты
	ServiceID       int64                  // ID услуги
	DurationMinutes int                    // Длительность услуги в минутах
	Slots           []domain.AvailableSlot // Список доступных слотов
}
