package petservice

import "errors"

var (
	// ErrPetNotFound возвращается, когда у пользователя нет выбранного питомца
	ErrPetNotFound = errors.New("user has no selected pet")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("petservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("petservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что PetService недоступен и запись создаётся без данных питомца
	ErrServiceDegraded = errors.New("petservice unavailable: graceful degradation applied")
)
