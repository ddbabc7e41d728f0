package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
)

// GridStore хранит последнюю разрешенную сетку слотов для каждого GridKey.
// Вытесненные ключи перестают обновляться фоновым обновлением.
type GridStore struct {
	grids   *lru.Cache[domain.GridKey, *domain.SlotGrid]
	onEvict func(key domain.GridKey)
}

// NewGridStore создает хранилище на size сеток. onEvict может быть nil.
func NewGridStore(size int, onEvict func(key domain.GridKey)) (*GridStore, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	s := &GridStore{onEvict: onEvict}
	c, err := lru.NewWithEvict[domain.GridKey, *domain.SlotGrid](size, s.evicted)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, err)
	}
	s.grids = c
	return s, nil
}

func (s *GridStore) evicted(key domain.GridKey, _ *domain.SlotGrid) {
	if s.onEvict != nil {
		s.onEvict(key)
	}
}

// Get возвращает сетку по ключу. Сетка не должна изменяться вызывающим.
func (s *GridStore) Get(key domain.GridKey) (*domain.SlotGrid, bool) {
	return s.grids.Get(key)
}

// Peek как Get, но не продлевает жизнь ключа
func (s *GridStore) Peek(key domain.GridKey) (*domain.SlotGrid, bool) {
	return s.grids.Peek(key)
}

// Put сохраняет сетку. Последняя запись побеждает.
func (s *GridStore) Put(grid *domain.SlotGrid) {
	if grid == nil {
		return
	}
	s.grids.Add(grid.Key, grid)
}

// Remove удаляет сетку
func (s *GridStore) Remove(key domain.GridKey) {
	s.grids.Remove(key)
}

// Keys возвращает ключи от самых старых к самым новым
func (s *GridStore) Keys() []domain.GridKey {
	return s.grids.Keys()
}

func (s *GridStore) Len() int {
	return s.grids.Len()
}
