package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceInactive возвращается, когда услуга отключена в каталоге
	ErrServiceInactive = errors.New("create_appointment: service is inactive")

	// ErrPetNotFound возвращается, когда у пользователя нет выбранного питомца
	ErrPetNotFound = errors.New("create_appointment: user has no selected pet")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrSalonClosed возвращается, когда салон не работает в указанный день
	ErrSalonClosed = errors.New("create_appointment: salon is closed on this date")

	// ErrSlotTaken возвращается, когда выбранный слот пересекается с существующей записью
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на сетке слотов или услуга не успевает до закрытия
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrTooLateToBook возвращается, когда запись нарушает minimumLeadMinutes
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
