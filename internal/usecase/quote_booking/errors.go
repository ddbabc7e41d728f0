package quote_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrEmptySelection возвращается, когда не выбран ни один слот
	ErrEmptySelection = errors.New("no slots selected")

	// ErrDuplicateSlot возвращается, когда слот выбран дважды
	ErrDuplicateSlot = errors.New("slot selected twice")

	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("store not found")

	// ErrFieldNotFound возвращается, когда поля нет в сетке магазина
	ErrFieldNotFound = errors.New("field not found")

	// ErrSlotNotFound возвращается, когда время не попадает на лестницу слотов поля
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotNotAvailable возвращается, когда слот уже оплачен другим пользователем
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
