package kvstore

import (
	apperrors "github.com/yourusername/formbuilder-api/internal/pkg/errors"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

// AdminUserRepo реализует repository.AdminUserRepository
type AdminUserRepo struct {
	admins *collection[entity.AdminUser]
}

// NewAdminUserRepo создает репозиторий администраторов
func NewAdminUserRepo(kv storage.KV) *AdminUserRepo {
	return &AdminUserRepo{
		admins: newCollection(kv, keyAdminUsers, func(a *entity.AdminUser) string { return a.ID }),
	}
}

// GetByEmail возвращает администратора по email (точное совпадение)
func (r *AdminUserRepo) GetByEmail(email string) (*entity.AdminUser, error) {
	matched, err := r.admins.filter(func(a *entity.AdminUser) bool { return a.Email == email })
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, apperrors.ErrNotFound
	}
	admin := matched[0]
	return &admin, nil
}

// Upsert заменяет администратора по id или добавляет нового
func (r *AdminUserRepo) Upsert(admin *entity.AdminUser) error {
	return r.admins.upsert(admin)
}

// Count возвращает количество администраторов
func (r *AdminUserRepo) Count() (int, error) {
	admins, err := r.admins.all()
	if err != nil {
		return 0, err
	}
	return len(admins), nil
}
