// Package store — именованное KV-хранилище коллекций: под одним строковым
// ключом лежит целиком сериализованная коллекция. Чтение отсутствующего
// ключа — не ошибка, запись всегда заменяет значение целиком.
package store

import "context"

type Store interface {
	// Get возвращает значение и признак наличия ключа.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put заменяет значение ключа целиком.
	Put(ctx context.Context, key string, value []byte) error
}
