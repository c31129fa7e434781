package storage

import (
	"sync"

	apperrors "github.com/yourusername/formbuilder-api/internal/pkg/errors"
)

// MemoryKV - хранилище в памяти. Используется в тестах и как
// драйвер по умолчанию при запуске без персистентности.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKV создает пустое хранилище в памяти
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get возвращает значение ключа или ErrNotFound
func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	// Копия, чтобы вызывающий не мог изменить внутреннее состояние
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set записывает значение ключа (полная перезапись)
func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// Delete удаляет ключ; удаление отсутствующего ключа не является ошибкой
func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}
