package get_slot_grid

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStoreNotFound возвращается, когда бэкенд не знает магазин
	ErrStoreNotFound = errors.New("store not found")

	// ErrBackendUnavailable возвращается, когда бэкенд не ответил и старой сетки нет
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
