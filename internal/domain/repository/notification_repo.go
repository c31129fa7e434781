package repository

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// NotificationRepository определяет методы для работы со списком
// уведомлений админ-панели. Список ограничен entity.NotificationLimit
// записями, старые вытесняются по FIFO.
type NotificationRepository interface {
	// Append добавляет уведомление в конец списка, усекая его спереди
	// при превышении лимита
	Append(notification *entity.Notification) error
	// List возвращает уведомления от новых к старым
	List() ([]entity.Notification, error)
}
