package snapshot

import "errors"

var (
	// ErrSnapshotNotFound возвращается, когда снимок сетки не найден
	ErrSnapshotNotFound = errors.New("snapshot.repository: snapshot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("snapshot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("snapshot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("snapshot.repository: failed to scan row")

	// ErrEncode возвращается при ошибке (де)сериализации сетки
	ErrEncode = errors.New("snapshot.repository: failed to encode payload")
)
