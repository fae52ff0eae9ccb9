package get_salon_appointments

import (
	"time"

	"github.com/pawline/PGS-BookingService/internal/domain"
	"github.com/pawline/PGS-BookingService/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров
// startDate и endDate должны указываться парой
func ToServiceRequest(userID int64, startDateStr, endDateStr, status string, includeInactive bool) (*models.GetSalonAppointmentsRequest, error) {
	req := &models.GetSalonAppointmentsRequest{
		UserID:          userID,
		IncludeInactive: includeInactive,
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status != "" {
		req.Status = &status
	}

	return req, nil
}
