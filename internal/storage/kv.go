// Package storage предоставляет низкоуровневое key-value хранилище,
// поверх которого работает слой репозиториев: каждая коллекция записей
// хранится целиком как один JSON-документ под своим ключом.
package storage

// KV определяет контракт key-value бэкенда.
// Get для отсутствующего ключа возвращает apperrors.ErrNotFound;
// слой коллекций трактует это как пустую коллекцию.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
