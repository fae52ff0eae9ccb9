package catalogservice

// Service модель услуги груминга из CatalogService
// Движку доступности нужна только длительность; остальные поля
// денормализуются в запись при создании
type Service struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price,omitempty"`
	IsActive        bool     `json:"is_active"`
}

// SalonProfile профиль салона из CatalogService
type SalonProfile struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	ManagerIDs []int64 `json:"manager_ids"`
}

// IsManager проверяет, что пользователь входит в список менеджеров салона
func (p *SalonProfile) IsManager(userID int64) bool {
	for _, id := range p.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
