package kvstore

import (
	"github.com/yourusername/formbuilder-api/internal/domain/entity"
	"github.com/yourusername/formbuilder-api/internal/storage"
)

// UserRepo реализует repository.UserRepository
type UserRepo struct {
	users *collection[entity.User]
}

// NewUserRepo создает репозиторий респондентов
func NewUserRepo(kv storage.KV) *UserRepo {
	return &UserRepo{
		users: newCollection(kv, keyUsers, func(u *entity.User) string { return u.ID }),
	}
}

// GetByID возвращает респондента по id
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.users.find(id)
}

// Upsert заменяет респондента по id или добавляет нового
func (r *UserRepo) Upsert(user *entity.User) error {
	return r.users.upsert(user)
}
