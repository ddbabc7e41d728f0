package arenaapi

import "errors"

var (
	// ErrNotFound возвращается, когда бэкенд отвечает 404
	ErrNotFound = errors.New("arenaapi client: resource not found")

	// ErrBadRequest возвращается, когда бэкенд отклоняет запрос (400/422)
	ErrBadRequest = errors.New("arenaapi client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут)
	ErrInternal = errors.New("arenaapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("arenaapi client: invalid response")
)
