package petservice

// Pet модель питомца из PetService
type Pet struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	Name       string  `json:"name"`
	Species    string  `json:"species"` // dog, cat
	Breed      string  `json:"breed"`
	Size       string  `json:"size"` // Размер питомца (S, M, L, XL)
	IsSelected bool    `json:"is_selected"`
	Notes      *string `json:"notes,omitempty"`
}

// ErrorResponse модель ошибки от PetService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
