package get_slot_grid

import (
	"time"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
)

// Source откуда взята сетка
type Source string

const (
	SourceMemory   Source = "memory"
	SourceBackend  Source = "backend"
	SourceSnapshot Source = "snapshot"
)

// Request модель запроса сетки слотов
type Request struct {
	StoreID string
	Sport   string    // пустая строка - все виды спорта
	Date    time.Time // дата без времени
	Fresh   bool      // игнорировать сетку в памяти
}

// Response модель ответа
type Response struct {
	Grid   *domain.SlotGrid
	Source Source
}
