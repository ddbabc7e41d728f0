package pricing

import "errors"

var (
	// ErrPricingNotFound возвращается, когда правило цены не найдено
	ErrPricingNotFound = errors.New("pricing not found")

	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("field not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRejected возвращается, когда бэкенд отклонил правило (например, пересечение)
	ErrRejected = errors.New("pricing rejected by backend")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
