package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда запись принадлежит другому пользователю
	ErrAccessDenied = errors.New("reschedule_appointment: access denied")

	// ErrRescheduleNotAllowed возвращается, когда перенос запрещён политикой:
	// отменённая или завершённая запись, либо до начала меньше 24 часов
	ErrRescheduleNotAllowed = errors.New("reschedule_appointment: reschedule is not allowed")

	// ErrInvalidDate возвращается при некорректной новой дате
	ErrInvalidDate = errors.New("reschedule_appointment: invalid appointment date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("reschedule_appointment: date is too far in the future")

	// ErrSalonClosed возвращается, когда салон не работает в указанный день
	ErrSalonClosed = errors.New("reschedule_appointment: salon is closed on this date")

	// ErrSlotTaken возвращается, когда новый слот пересекается с другой записью
	ErrSlotTaken = errors.New("reschedule_appointment: slot is already taken")

	// ErrInvalidTimeSlot возвращается, когда новое время не лежит на сетке слотов
	ErrInvalidTimeSlot = errors.New("reschedule_appointment: invalid time slot")

	// ErrTooLateToBook возвращается, когда новый слот нарушает minimumLeadMinutes
	ErrTooLateToBook = errors.New("reschedule_appointment: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
