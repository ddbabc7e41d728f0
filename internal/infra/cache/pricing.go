package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
)

// PricingCache хранит наборы правил цен по fieldID.
// Набор всегда заменяется целиком. Запись живет не дольше ttl: правила
// принадлежат бэкенду и могут меняться в обход этого сервиса.
type PricingCache struct {
	rules *expirable.LRU[string, []domain.PricingRule]
}

// NewPricingCache создает кэш правил на size полей со сроком жизни записи ttl
func NewPricingCache(size int, ttl time.Duration) (*PricingCache, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	return &PricingCache{
		rules: expirable.NewLRU[string, []domain.PricingRule](size, nil, ttl),
	}, nil
}

// Get возвращает копию закэшированных правил поля
func (c *PricingCache) Get(fieldID string) ([]domain.PricingRule, bool) {
	rules, ok := c.rules.Get(fieldID)
	if !ok {
		return nil, false
	}
	out := make([]domain.PricingRule, len(rules))
	copy(out, rules)
	return out, true
}

// Set сохраняет правила поля в порядке, полученном от бэкенда
func (c *PricingCache) Set(fieldID string, rules []domain.PricingRule) {
	stored := make([]domain.PricingRule, len(rules))
	copy(stored, rules)
	c.rules.Add(fieldID, stored)
}

// Invalidate удаляет правила поля
func (c *PricingCache) Invalidate(fieldID string) {
	c.rules.Remove(fieldID)
}

func (c *PricingCache) Len() int {
	return c.rules.Len()
}
