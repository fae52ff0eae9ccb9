package update_appointment_status

import (
	"github.com/pawline/PGS-BookingService/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP-модель запроса на смену статуса записи
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: r.UserID,
		Status: r.Status,
	}
}
