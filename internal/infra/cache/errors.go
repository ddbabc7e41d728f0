package cache

import "errors"

var (
	// ErrInvalidSize возвращается при неположительном размере кэша
	ErrInvalidSize = errors.New("cache: size must be positive")
	// ErrInvalidTTL возвращается при неположительном сроке жизни записи
	ErrInvalidTTL = errors.New("cache: ttl must be positive")
)
