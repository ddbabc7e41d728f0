package refresher

import "errors"

var (
	// ErrUnknownReason возвращается при неизвестной причине обновления
	ErrUnknownReason = errors.New("unknown refresh reason")

	// ErrBusy возвращается, когда очередь сигналов переполнена
	ErrBusy = errors.New("refresh queue is full")
)
