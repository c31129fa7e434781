package kvstore

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

// ActivityLogRepo реализует repository.ActivityLogRepository
type ActivityLogRepo struct {
	logs *collection[entity.ActivityLog]
}

// NewActivityLogRepo создает репозиторий журнала активности
func NewActivityLogRepo(kv storage.KV) *ActivityLogRepo {
	return &ActivityLogRepo{
		logs: newCollection(kv, keyActivityLogs, func(l *entity.ActivityLog) string { return l.ID }),
	}
}

// Append добавляет запись в конец журнала
func (r *ActivityLogRepo) Append(log *entity.ActivityLog) error {
	return r.logs.mutate(func(items []entity.ActivityLog) []entity.ActivityLog {
		return append(items, *log)
	})
}

// List возвращает записи от новых к старым, не более limit штук
func (r *ActivityLogRepo) List(limit int) ([]entity.ActivityLog, error) {
	items, err := r.logs.all()
	if err != nil {
		return nil, err
	}
	out := make([]entity.ActivityLog, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
