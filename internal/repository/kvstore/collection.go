// Package kvstore реализует интерфейсы domain/repository поверх
// key-value хранилища: коллекция записей одного типа хранится целиком
// как JSON-массив под своим ключом. Поиск и фильтрация - линейные,
// запись - полная перезапись коллекции (last-write-wins).
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	apperrors "github.com/yourusername/formbuilder-api/internal/pkg/errors"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

// Ключи коллекций в хранилище
const (
	keyForms         = "forms"
	keyQuestions     = "questions"
	keyResponses     = "responses"
	keyUsers         = "users"
	keyAdminUsers    = "admin_users"
	keyNotifications = "notifications"
	keyCertificates  = "certificates"
	keyBrandSettings = "brand_settings"
	keyActivityLogs  = "activity_logs"
	keyFormTemplates = "form_templates"
)

// collection инкапсулирует цикл "прочитать всё - изменить - перезаписать"
// для одной коллекции. Мьютекс делает этот цикл последовательным внутри
// процесса; между процессами действует документированный last-write-wins.
type collection[T any] struct {
	kv  storage.KV
	key string
	id  func(*T) string
	mu  sync.Mutex
}

func newCollection[T any](kv storage.KV, key string, id func(*T) string) *collection[T] {
	return &collection[T]{kv: kv, key: key, id: id}
}

// readAll возвращает всю коллекцию; отсутствующий ключ - пустой список
func (c *collection[T]) readAll() ([]T, error) {
	data, err := c.kv.Get(c.key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", c.key, err)
	}
	return items, nil
}

// writeAll перезаписывает коллекцию целиком
func (c *collection[T]) writeAll(items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.key, err)
	}
	if err := c.kv.Set(c.key, data); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", c.key, err)
	}
	return nil
}

// find возвращает запись по id или ErrNotFound
func (c *collection[T]) find(id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.readAll()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.id(&items[i]) == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// filter возвращает записи, удовлетворяющие предикату
func (c *collection[T]) filter(pred func(*T) bool) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.readAll()
	if err != nil {
		return nil, err
	}
	matched := make([]T, 0, len(items))
	for i := range items {
		if pred(&items[i]) {
			matched = append(matched, items[i])
		}
	}
	return matched, nil
}

// all возвращает коллекцию целиком
func (c *collection[T]) all() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readAll()
}

// upsert заменяет запись с тем же id или добавляет ее в конец
func (c *collection[T]) upsert(item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.readAll()
	if err != nil {
		return err
	}

	id := c.id(item)
	replaced := false
	for i := range items {
		if c.id(&items[i]) == id {
			items[i] = *item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, *item)
	}
	return c.writeAll(items)
}

// upsertBatch сливает пачку записей в коллекцию одной перезаписью
func (c *collection[T]) upsertBatch(batch []T) error {
	if len(batch) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.readAll()
	if err != nil {
		return err
	}

	for bi := range batch {
		id := c.id(&batch[bi])
		replaced := false
		for i := range items {
			if c.id(&items[i]) == id {
				items[i] = batch[bi]
				replaced = true
				break
			}
		}
		if !replaced {
			items = append(items, batch[bi])
		}
	}
	return c.writeAll(items)
}

// deleteWhere удаляет записи, удовлетворяющие предикату
func (c *collection[T]) deleteWhere(pred func(*T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.readAll()
	if err != nil {
		return err
	}
	kept := items[:0]
	for i := range items {
		if !pred(&items[i]) {
			kept = append(kept, items[i])
		}
	}
	return c.writeAll(kept)
}

// mutate выполняет произвольное преобразование коллекции под мьютексом
func (c *collection[T]) mutate(fn func(items []T) []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.readAll()
	if err != nil {
		return err
	}
	return c.writeAll(fn(items))
}
