package repository

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// ActivityLogRepository определяет методы журнала действий администратора
type ActivityLogRepository interface {
	Append(log *entity.ActivityLog) error
	// List возвращает записи от новых к старым, не более limit штук
	// (limit <= 0 - без ограничения)
	List(limit int) ([]entity.ActivityLog, error)
}
