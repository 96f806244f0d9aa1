package workinghours

import "errors"

var (
	// ErrWorkingHoursNotFound возвращается, когда у сотрудника нет своих рабочих часов
	ErrWorkingHoursNotFound = errors.New("working hours not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff not found")

	// ErrAccessDenied возвращается, когда сотрудник меняет чужие рабочие часы
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно
	ErrStoreUnavailable = errors.New("service: store unavailable")
)
