// Package collection — общий каркас менеджеров каталогов: загрузка и полная
// перезапись JSON-коллекции в хранилище плюс генерация идентификаторов.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/montazhpro/smeta/internal/infra/metrics"
	"github.com/montazhpro/smeta/internal/store"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// ID возвращает идентификатор вида <prefix>_<unix-millis>_<9 знаков base36>.
// Формат совместим с уже сохранёнными данными, уникальность — best-effort.
func ID(prefix string) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}

// Collection — одна именованная коллекция записей типа T.
// Цикл чтение-изменение-запись сериализуется мьютексом, межпроцессные
// писатели не координируются: последний Put побеждает.
type Collection[T any] struct {
	store  store.Store
	key    string
	prefix string
	mu     sync.Mutex
	now    func() time.Time
}

func New[T any](s store.Store, key, prefix string) *Collection[T] {
	return &Collection[T]{store: s, key: key, prefix: prefix, now: time.Now}
}

// SetClock подменяет часы (для тестов).
func (c *Collection[T]) SetClock(now func() time.Time) { c.now = now }

func (c *Collection[T]) NewID() string { return ID(c.prefix) }

func (c *Collection[T]) NowMillis() int64 { return c.now().UnixMilli() }

// Load читает коллекцию целиком. Отсутствующий ключ — пустая коллекция.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	metrics.CollectionLoads.WithLabelValues(c.key).Inc()
	b, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("corrupt collection %q: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save заменяет сохранённую коллекцию целиком.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	metrics.CollectionSaves.WithLabelValues(c.key).Inc()
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", c.key, err)
	}
	return c.store.Put(ctx, c.key, b)
}

// Mutate выполняет цикл чтение-изменение-запись под мьютексом.
// fn возвращает новую коллекцию и признак "сохранять"; при false
// хранилище не трогаем. Возвращает этот же признак.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, bool)) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.Load(ctx)
	if err != nil {
		return false, err
	}
	next, save := fn(items)
	if !save {
		return false, nil
	}
	if err := c.Save(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}
