package kvstore

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

// NotificationRepo реализует repository.NotificationRepository.
// Список хранится в хронологическом порядке (новые в конце) и усечен
// до entity.NotificationLimit записей.
type NotificationRepo struct {
	notifications *collection[entity.Notification]
}

// NewNotificationRepo создает репозиторий уведомлений
func NewNotificationRepo(kv storage.KV) *NotificationRepo {
	return &NotificationRepo{
		notifications: newCollection(kv, keyNotifications, func(n *entity.Notification) string { return n.ID }),
	}
}

// Append добавляет уведомление в конец списка, вытесняя старые по FIFO
func (r *NotificationRepo) Append(notification *entity.Notification) error {
	return r.notifications.mutate(func(items []entity.Notification) []entity.Notification {
		items = append(items, *notification)
		if len(items) > entity.NotificationLimit {
			items = items[len(items)-entity.NotificationLimit:]
		}
		return items
	})
}

// List возвращает уведомления от новых к старым
func (r *NotificationRepo) List() ([]entity.Notification, error) {
	items, err := r.notifications.all()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Notification, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}
	return out, nil
}
